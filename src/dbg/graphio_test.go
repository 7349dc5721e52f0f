package dbg

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stitch-bio/stitch/src/seqio"
)

// a graph must survive a dump/load round trip
func TestGraphDumpLoad(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "stitch-dbg-test")
	if err != nil {
		t.Fatalf("could not create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	group := createReadGroup(t, "group_1", testRead, homopolymerRead)
	graph, err := NewGraph(testK, []*seqio.ReadGroup{group})
	if err != nil {
		t.Fatalf("could not create the graph: %v", err)
	}
	dumpFile := filepath.Join(tmpDir, "graph.stitch")
	if err := graph.Dump(dumpFile); err != nil {
		t.Fatalf("could not dump the graph: %v", err)
	}
	loaded := new(Graph)
	if err := loaded.Load(dumpFile); err != nil {
		t.Fatalf("could not load the graph: %v", err)
	}
	if loaded.KmerSize != graph.KmerSize {
		t.Fatalf("k-mer size did not survive the round trip")
	}
	if loaded.NumNodes != graph.NumNodes {
		t.Fatalf("node count did not survive the round trip")
	}
	for kmer, id := range graph.KmerLookup {
		loadedID, ok := loaded.KmerLookup[kmer]
		if !ok || loadedID != id {
			t.Fatalf("k-mer lookup did not survive the round trip: %v", kmer)
		}
		if loaded.Nodes[id].Count != graph.Nodes[id].Count {
			t.Fatalf("node count did not survive the round trip: %v", kmer)
		}
		for child := range graph.Nodes[id].Children {
			if !loaded.Nodes[id].Children[child] {
				t.Fatalf("child set did not survive the round trip: %v", kmer)
			}
		}
	}
	// the loaded graph must still assemble
	if contig := loaded.NextContig(); string(contig) != "ATCGAT" {
		t.Fatalf("loaded graph did not assemble the expected contig: %v", string(contig))
	}
}

// the GFA export must write one segment per live node
func TestSaveGraphAsGFA(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "stitch-dbg-test")
	if err != nil {
		t.Fatalf("could not create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	group := createReadGroup(t, "group_1", testRead)
	graph, err := NewGraph(testK, []*seqio.ReadGroup{group})
	if err != nil {
		t.Fatalf("could not create the graph: %v", err)
	}
	gfaFile := filepath.Join(tmpDir, "graph.gfa")
	segCount, err := graph.SaveGraphAsGFA(gfaFile)
	if err != nil {
		t.Fatalf("could not save the graph as GFA: %v", err)
	}
	if segCount != graph.NumNodes {
		t.Fatalf("expected %d segments, got %d", graph.NumNodes, segCount)
	}
	content, err := ioutil.ReadFile(gfaFile)
	if err != nil {
		t.Fatalf("could not read the GFA file: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("GFA file is empty")
	}
}
