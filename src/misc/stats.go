package misc

import "sort"

// N50 returns the length L such that contigs of length >= L hold at least half of the total assembled bases
// a nil or empty length set yields 0
func N50(lengths []int) int {
	sorted := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	total := 0
	for _, length := range sorted {
		total += length
	}
	cumulative := 0
	for _, length := range sorted {
		cumulative += length
		if 2*cumulative >= total {
			return length
		}
	}
	return 0
}

// SumLengths returns the total number of bases across all contigs
func SumLengths(lengths []int) int {
	total := 0
	for _, length := range lengths {
		total += length
	}
	return total
}
