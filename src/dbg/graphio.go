package dbg

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/will-rowe/gfa"
	"gopkg.in/vmihailenco/msgpack.v2"

	"github.com/stitch-bio/stitch/src/version"
)

/*
	Methods to dump the de Bruijn graph to disk and then load it again
*/

// Dump a graph to disk
func (graph *Graph) Dump(path string) error {
	b, err := msgpack.Marshal(graph)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// Load a graph from disk
func (graph *Graph) Load(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(b, graph)
}

// SaveGraphAsGFA is a method to convert and save the de Bruijn graph in GFA format
// each live node becomes a segment (with its occurrence count as a KC tag) and each arc becomes a link with a k-1 overlap
func (graph *Graph) SaveGraphAsGFA(fileName string) (int, error) {
	t := time.Now()
	stamp := fmt.Sprintf("de Bruijn graph created by stitch (version %v) at: %v", version.GetVersion(), t.Format("Mon Jan _2 15:04:05 2006"))
	msg := fmt.Sprintf("k-mer size: %d, live nodes: %d", graph.KmerSize, graph.NumNodes)
	// create a GFA instance
	newGFA := gfa.NewGFA()
	_ = newGFA.AddVersion(1)
	newGFA.AddComment([]byte(stamp))
	newGFA.AddComment([]byte(msg))
	overlap := []byte(strconv.Itoa(graph.KmerSize-1) + "M")
	// transfer all the node content to the GFA instance
	segCount := 0
	for id, node := range graph.Nodes {
		if node == nil {
			continue
		}
		segID := strconv.Itoa(id)
		seg, err := gfa.NewSegment([]byte(segID), node.Kmer)
		if err != nil {
			return 0, err
		}
		kmerCount := fmt.Sprintf("KC:i:%d", node.Count)
		ofs, err := gfa.NewOptionalFields([]byte(kmerCount))
		if err != nil {
			return 0, err
		}
		seg.AddOptionalFields(ofs)
		seg.Add(newGFA)
		// create the links
		for _, child := range graph.sortedChildren(id) {
			link, err := gfa.NewLink([]byte(segID), []byte("+"), []byte(strconv.Itoa(child)), []byte("+"), overlap)
			if err != nil {
				return 0, err
			}
			link.Add(newGFA)
		}
		segCount++
	}
	// create a gfaWriter and write the GFA instance
	outfile, err := os.Create(fileName)
	if err != nil {
		return 0, err
	}
	defer outfile.Close()
	writer, err := gfa.NewWriter(outfile, newGFA)
	if err != nil {
		return 0, err
	}
	if err := newGFA.WriteGFAContent(writer); err != nil {
		return 0, err
	}
	return segCount, nil
}
