// Copyright © 2020 the STITCH authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stitch-bio/stitch/src/dbg"
	"github.com/stitch-bio/stitch/src/misc"
)

// the command line arguments
var (
	graphFile *string // the graph dump to inspect
	gfaFile   *string // optional GFA file to export the graph to
)

// the inspect command (used by cobra)
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a de Bruijn graph dump and optionally export it as GFA",
	Long:  `Inspect a de Bruijn graph dump and optionally export it as GFA`,
	Run: func(cmd *cobra.Command, args []string) {
		runInspect()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	graphFile = inspectCmd.Flags().StringP("graphFile", "g", "", "de Bruijn graph dump to inspect (see `stitch assemble --graphDump`) - required")
	gfaFile = inspectCmd.Flags().String("gfa", "", "export the graph in GFA format to this file")
	inspectCmd.MarkFlagRequired("graphFile")
	RootCmd.AddCommand(inspectCmd)
}

/*
  The main function for the inspect sub-command
*/
func runInspect() {
	misc.ErrorCheck(misc.CheckFile(*graphFile))
	graph := new(dbg.Graph)
	misc.ErrorCheck(graph.Load(*graphFile))
	// print the graph summary to STDOUT
	fmt.Printf("file\t%v\n", *graphFile)
	fmt.Printf("k-mer size\t%d\n", graph.KmerSize)
	fmt.Printf("nodes\t%d\n", graph.NumNodes)
	fmt.Printf("count distribution (counts 0-9)\t%v\n", graph.CountDistribution()[:10])
	if *gfaFile != "" {
		segCount, err := graph.SaveGraphAsGFA(*gfaFile)
		misc.ErrorCheck(err)
		fmt.Printf("saved %d segments to: %v\n", segCount, *gfaFile)
	}
}
