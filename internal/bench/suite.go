package bench

import "github.com/hupe1980/crcspeed"

// Suite returns the CRC-64 and CRC-16 groups, each comparing the bitwise
// reference, the single-table lookup and the slice-by-8 table built with
// optFns. Tables are built here, once, before anything is timed.
func Suite(optFns ...crcspeed.Option) []Group {
	return []Group{
		modelGroup("crc64", crcspeed.CRC64Redis, optFns),
		modelGroup("crc16", crcspeed.CRC16XModem, optFns),
	}
}

func modelGroup[T crcspeed.Word](prefix string, m crcspeed.Model[T], optFns []crcspeed.Option) Group {
	fn := m.Func()
	tab := m.MakeTable(optFns...)

	return Group{
		Name:  m.Name,
		Width: tab.Width(),
		Candidates: []Candidate{
			{Name: prefix + " (no table)", Fn: Widen(fn)},
			{Name: prefix + " (lookup table)", Fn: Widen(crcspeed.Bytewise(fn, !m.Reflected))},
			{Name: prefix + "speed", Fn: Widen[T](tab.Update)},
		},
	}
}

// Fastest returns the slice-by-8 candidate of g.
func Fastest(g Group) Candidate {
	return g.Candidates[len(g.Candidates)-1]
}
