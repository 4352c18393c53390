package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/crcspeed"
	"github.com/hupe1980/crcspeed/internal/bench"
)

// loremIpsum is checked with its trailing NUL.
const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
	"eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut " +
	"enim ad minim veniam, quis nostrud exercitation ullamco laboris " +
	"nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in " +
	"reprehenderit in voluptate velit esse cillum dolore eu fugiat " +
	"nulla pariatur. Excepteur sint occaecat cupidatat non proident, " +
	"sunt in culpa qui officia deserunt mollit anim id est laborum.\x00"

// checkInput pairs an input with the expected CRC per group.
type checkInput struct {
	data     string
	expected map[string]string
}

var checkInputs = []checkInput{
	{
		data: crcspeed.CheckInput,
		expected: map[string]string{
			crcspeed.CRC64Redis.Name:  "e9c6d914c4b8d9ca",
			crcspeed.CRC16XModem.Name: "31c3",
		},
	},
	{
		data: loremIpsum,
		expected: map[string]string{
			crcspeed.CRC64Redis.Name:  "c7794709e69683b3",
			crcspeed.CRC16XModem.Name: "4b20",
		},
	},
}

var variantTags = []string{"calcu", "looku", "speed"}

// writeCheckValues prints one "[64speed]: expected == actual" line per
// candidate and input. It returns false if any line disagrees.
func writeCheckValues(w io.Writer, report bench.Report, in checkInput) bool {
	ok := true
	index := map[string]int{}
	for _, res := range report.Results {
		i := index[res.Group]
		index[res.Group]++

		tag := fmt.Sprint(i)
		if i < len(variantTags) {
			tag = variantTags[i]
		}
		want := in.expected[res.Group]
		if want != res.Hex() {
			ok = false
		}
		fmt.Fprintf(w, "[%d%s]: %s == %s\n", res.Width, tag, want, res.Hex())
	}
	return ok
}

// writeReport prints the comparison, human readable or as crc:speed lines.
func writeReport(w io.Writer, report bench.Report, parse bool) {
	if !parse {
		fmt.Fprintf(w, "Comparing CRCs against %0.2f MB file...\n\n", float64(report.Size)/1024/1024)
	}

	baseline := map[string]bench.Result{}
	for _, res := range report.Results {
		if _, seen := baseline[res.Group]; !seen {
			baseline[res.Group] = res
		}
		writeResult(w, res, parse)
		if res.Mismatch {
			fmt.Fprintf(w, "ERROR: CRC results don't match! (%s vs. %s)\n", baseline[res.Group].Hex(), res.Hex())
		}
		fmt.Fprintln(w)
	}
}

func writeResult(w io.Writer, res bench.Result, parse bool) {
	mbps := res.Throughput() / 1024 / 1024
	if parse {
		fmt.Fprintf(w, "%016x:%f\n", res.CRC, mbps)
		return
	}

	fmt.Fprintln(w, res.Name)
	fmt.Fprintf(w, "CRC = %016x\n", res.CRC)
	fmt.Fprintf(w, "%f seconds at %0.2f MB/s (%s/s, %0.3f ns per byte)\n",
		res.Elapsed.Seconds(), mbps, humanize.IBytes(uint64(res.Throughput())), nsPerByte(res))
}

func nsPerByte(res bench.Result) float64 {
	if res.Bytes == 0 {
		return 0
	}
	return float64(res.Elapsed) / float64(time.Nanosecond) / float64(res.Bytes)
}
