package misc

import "testing"

func TestN50(t *testing.T) {
	if n50 := N50(nil); n50 != 0 {
		t.Fatalf("expected 0 for an empty assembly, got %d", n50)
	}
	if n50 := N50([]int{100}); n50 != 100 {
		t.Fatalf("expected 100 for a single contig, got %d", n50)
	}
	// total = 150, half covered once the 40 base contig is included
	if n50 := N50([]int{30, 50, 10, 40, 20}); n50 != 40 {
		t.Fatalf("expected an N50 of 40, got %d", n50)
	}
	// equal halves: the contig crossing the midpoint wins
	if n50 := N50([]int{50, 50}); n50 != 50 {
		t.Fatalf("expected an N50 of 50, got %d", n50)
	}
}

func TestSumLengths(t *testing.T) {
	if total := SumLengths([]int{30, 50, 10, 40, 20}); total != 150 {
		t.Fatalf("expected a total length of 150, got %d", total)
	}
	if total := SumLengths(nil); total != 0 {
		t.Fatalf("expected 0 for an empty assembly, got %d", total)
	}
}
