/*
	tests for the dbg package
*/
package dbg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stitch-bio/stitch/src/seqio"
)

// test input
var (
	testK           = 3
	testRead        = "ATCGATCG"   // forward k-mers and reverse complement k-mers form a single 4-node cycle
	homopolymerRead = "TTTTTTTTTT" // contributes the self-looping nodes TTT and AAA
)

// the k-mers expected from testRead (both orientations collapse to the same node set)
var expectedKmers = []string{"ATC", "TCG", "CGA", "GAT"}

// the arcs expected from testRead, keyed by source k-mer
var expectedArcs = map[string]string{
	"ATC": "TCG",
	"TCG": "CGA",
	"CGA": "GAT",
	"GAT": "ATC",
}

// createReadGroup is a helper to build a read group from raw sequences
func createReadGroup(t *testing.T, name string, seqs ...string) *seqio.ReadGroup {
	group := &seqio.ReadGroup{Name: name}
	for i, s := range seqs {
		read, err := seqio.NewSequence(fmt.Sprintf("read_%d", i), []byte(s))
		if err != nil {
			t.Fatalf("could not create read for group %v: %v", name, err)
		}
		group.Reads = append(group.Reads, read)
	}
	return group
}

// this test makes sure the graph construction preconditions are enforced
func TestGraphCheck(t *testing.T) {
	if _, err := NewGraph(testK, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("graph was built without any read groups: %v", err)
	}
	empty := &seqio.ReadGroup{Name: "empty"}
	if _, err := NewGraph(testK, []*seqio.ReadGroup{empty}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("graph was built from an empty first read group: %v", err)
	}
	group := createReadGroup(t, "group_1", testRead)
	if _, err := NewGraph(0, []*seqio.ReadGroup{group}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("graph was built with a non-positive k: %v", err)
	}
	if _, err := NewGraph(len(testRead)+1, []*seqio.ReadGroup{group}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("graph was built with k exceeding the first read length: %v", err)
	}
}

// this test makes sure the graph can be built and holds the expected nodes and arcs
func TestGraphConstruction(t *testing.T) {
	group := createReadGroup(t, "group_1", testRead)
	graph, err := NewGraph(testK, []*seqio.ReadGroup{group})
	if err != nil {
		t.Fatalf("could not create the graph: %v", err)
	}
	if graph.NumNodes != len(expectedKmers) {
		t.Fatalf("expected %d nodes, got %d", len(expectedKmers), graph.NumNodes)
	}
	for kmer, childKmer := range expectedArcs {
		id, ok := graph.GetNodeID([]byte(kmer))
		if !ok {
			t.Fatalf("k-mer is missing from the graph: %v", kmer)
		}
		childID, ok := graph.GetNodeID([]byte(childKmer))
		if !ok {
			t.Fatalf("k-mer is missing from the graph: %v", childKmer)
		}
		if len(graph.Nodes[id].Children) != 1 {
			t.Fatalf("expected a single child for %v, got %d", kmer, len(graph.Nodes[id].Children))
		}
		if !graph.Nodes[id].Children[childID] {
			t.Fatalf("missing arc %v -> %v", kmer, childKmer)
		}
	}
	// every k-mer is seen twice per orientation in the test read
	for _, kmer := range expectedKmers {
		id, _ := graph.GetNodeID([]byte(kmer))
		if graph.Nodes[id].Count != 4 {
			t.Fatalf("expected a count of 4 for %v, got %d", kmer, graph.Nodes[id].Count)
		}
	}
}

// repeated observations must collapse to a single arc but still increment the counts
func TestArcDeduplication(t *testing.T) {
	graph := &Graph{KmerSize: testK, KmerLookup: make(map[string]int)}
	graph.AddArc([]byte("TTT"), []byte("TTT"))
	graph.AddArc([]byte("TTT"), []byte("TTT"))
	if graph.NumNodes != 1 {
		t.Fatalf("expected 1 node, got %d", graph.NumNodes)
	}
	id, ok := graph.GetNodeID([]byte("TTT"))
	if !ok {
		t.Fatalf("k-mer is missing from the graph")
	}
	if len(graph.Nodes[id].Children) != 1 {
		t.Fatalf("duplicate arcs were not collapsed")
	}
	// both AddArc calls resolve both endpoints, so the count is 4
	if graph.Nodes[id].Count != 4 {
		t.Fatalf("expected a count of 4, got %d", graph.Nodes[id].Count)
	}
}

// node ids must be stable and never reused after deletion
func TestRemoveNodes(t *testing.T) {
	group := createReadGroup(t, "group_1", testRead, homopolymerRead)
	graph, err := NewGraph(testK, []*seqio.ReadGroup{group})
	if err != nil {
		t.Fatalf("could not create the graph: %v", err)
	}
	startNodes := graph.NumNodes
	id, ok := graph.GetNodeID([]byte("TCG"))
	if !ok {
		t.Fatalf("k-mer is missing from the graph")
	}
	graph.RemoveNodes([]int{id})
	if graph.NumNodes != startNodes-1 {
		t.Fatalf("node count was not decremented")
	}
	if _, ok := graph.GetNodeID([]byte("TCG")); ok {
		t.Fatalf("deleted k-mer is still retrievable")
	}
	if graph.Nodes[id] != nil {
		t.Fatalf("deleted node slot was not tombstoned")
	}
	// the contraction must have stripped the node from every remaining child set
	for _, node := range graph.Nodes {
		if node == nil {
			continue
		}
		if node.Children[id] {
			t.Fatalf("a remaining node still references the deleted id")
		}
	}
	// removing an already deleted node is a no-op
	graph.RemoveNodes([]int{id})
	if graph.NumNodes != startNodes-1 {
		t.Fatalf("removing a deleted node changed the node count")
	}
	// a new node must not reuse the tombstoned id
	newID := graph.AddNode([]byte("CCC"))
	if newID == id {
		t.Fatalf("a deleted node id was reused")
	}
}

// the count distribution must bin nodes by their occurrence count
func TestCountDistribution(t *testing.T) {
	group := createReadGroup(t, "group_1", testRead)
	graph, err := NewGraph(testK, []*seqio.ReadGroup{group})
	if err != nil {
		t.Fatalf("could not create the graph: %v", err)
	}
	dist := graph.CountDistribution()
	if dist[4] != len(expectedKmers) {
		t.Fatalf("expected %d nodes with a count of 4, got %d", len(expectedKmers), dist[4])
	}
	total := 0
	for _, bin := range dist {
		total += bin
	}
	if total != graph.NumNodes {
		t.Fatalf("count distribution does not cover all live nodes")
	}
}
