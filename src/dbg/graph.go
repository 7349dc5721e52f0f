/*
	the dbg package implements the de Bruijn graph used by STITCH to assemble reads into contigs
*/
package dbg

import (
	"errors"
	"fmt"

	"github.com/stitch-bio/stitch/src/seqio"
)

// ErrInvalidConfig is the error returned when the graph construction preconditions are not met
var ErrInvalidConfig = errors.New("invalid assembly configuration")

/*
	Graph is a de Bruijn graph over the k-mers of a read set and their reverse complements

	nodes live in a dense slice indexed by id; deleted slots are set to nil and ids are never reused
*/
type Graph struct {
	KmerSize   int
	Nodes      []*Node
	KmerLookup map[string]int // k-mer -> node id, used to deduplicate nodes
	NumNodes   int            // number of live (non-deleted) nodes
}

// NewGraph builds a de Bruijn graph from one or more read groups
func NewGraph(kSize int, readGroups []*seqio.ReadGroup) (*Graph, error) {
	newGraph := &Graph{
		KmerSize:   kSize,
		KmerLookup: make(map[string]int),
	}
	if err := newGraph.checkReads(readGroups); err != nil {
		return nil, err
	}
	if err := newGraph.build(readGroups); err != nil {
		return nil, err
	}
	return newGraph, nil
}

// checkReads makes sure the graph can be built before any nodes are added
func (graph *Graph) checkReads(readGroups []*seqio.ReadGroup) error {
	if len(readGroups) == 0 {
		return fmt.Errorf("%w: no read groups supplied", ErrInvalidConfig)
	}
	if len(readGroups[0].Reads) == 0 {
		return fmt.Errorf("%w: first read group contains no reads", ErrInvalidConfig)
	}
	if graph.KmerSize < 1 {
		return fmt.Errorf("%w: k-mer size must be a positive integer (got %d)", ErrInvalidConfig, graph.KmerSize)
	}
	if refLength := len(readGroups[0].Reads[0].Seq); graph.KmerSize > refLength {
		return fmt.Errorf("%w: k-mer size (%d) exceeds read length (%d)", ErrInvalidConfig, graph.KmerSize, refLength)
	}
	return nil
}

// build slides a window of length k over each read and its reverse complement, adding an arc for every pair of adjacent windows
func (graph *Graph) build(readGroups []*seqio.ReadGroup) error {
	k := graph.KmerSize
	for _, group := range readGroups {
		for _, read := range group.Reads {
			rc, err := read.RevComplement()
			if err != nil {
				return err
			}
			// the upper bound stops one window short of the end of the read, so the
			// final (k, k+1)-window pair of each read never contributes an arc
			for i := 0; i < len(read.Seq)-k-1; i++ {
				graph.AddArc(read.Seq[i:i+k], read.Seq[i+1:i+1+k])
				graph.AddArc(rc.Seq[i:i+k], rc.Seq[i+1:i+1+k])
			}
		}
	}
	return nil
}

// AddNode returns the id for the given k-mer, allocating a node if the k-mer is unseen
// every call increments the occurrence count of the k-mer
func (graph *Graph) AddNode(kmer []byte) int {
	id, ok := graph.KmerLookup[string(kmer)]
	if !ok {
		id = len(graph.Nodes)
		graph.Nodes = append(graph.Nodes, NewNode(kmer))
		graph.KmerLookup[string(kmer)] = id
		graph.NumNodes++
	}
	graph.Nodes[id].Increment()
	return id
}

// AddArc records an observed (k+1)-mer overlap between two k-mers, creating the endpoint nodes as needed
func (graph *Graph) AddArc(kmer1, kmer2 []byte) {
	id1 := graph.AddNode(kmer1)
	id2 := graph.AddNode(kmer2)
	graph.Nodes[id1].AddChild(id2)
}

// RemoveNodes deletes the given nodes and strips them from the child set of every remaining node
func (graph *Graph) RemoveNodes(ids []int) {
	doomed := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 0 || id >= len(graph.Nodes) || graph.Nodes[id] == nil {
			continue
		}
		delete(graph.KmerLookup, string(graph.Nodes[id].Kmer))
		graph.Nodes[id] = nil
		graph.NumNodes--
		doomed[id] = true
	}
	if len(doomed) == 0 {
		return
	}
	// contraction scans every remaining node, making each extraction O(remaining nodes)
	for _, node := range graph.Nodes {
		if node != nil {
			node.RemoveChildren(doomed)
		}
	}
}

// GetNodeID looks up the id for a k-mer, reporting whether the k-mer is held in the graph
func (graph *Graph) GetNodeID(kmer []byte) (int, bool) {
	id, ok := graph.KmerLookup[string(kmer)]
	return id, ok
}

// CountDistribution returns a histogram of k-mer occurrence counts; the final bin collects all larger counts
func (graph *Graph) CountDistribution() []int {
	bins := make([]int, 30)
	for _, node := range graph.Nodes {
		if node == nil {
			continue
		}
		count := node.Count
		if count >= len(bins) {
			count = len(bins) - 1
		}
		bins[count]++
	}
	return bins
}
