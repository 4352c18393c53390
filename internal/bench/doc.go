// Package bench times CRC implementations against each other over one buffer.
//
// Candidates are grouped; the first candidate of a group is its baseline and
// every other candidate must produce the same CRC. Suite returns the groups
// compared by the crcspeed command: for CRC-64/REDIS and CRC-16/XMODEM, the
// bit-at-a-time reference, the single-table lookup and the slice-by-8 table.
package bench
