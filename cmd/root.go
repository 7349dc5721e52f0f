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
	"os"

	"github.com/spf13/cobra"
)

// the command line arguments
var (
	profiling *bool   // create profile for go pprof
	logFile   *string // filename for the log file
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "stitch",
	Short: "assemble nucleotide reads into contigs using a de Bruijn graph",
	Long: `
#####################################################################################
		STITCH: Stitching Together Inferred contigs Through Coverage Heuristics
#####################################################################################

 STITCH is a tool to assemble sets of short and long nucleotide reads into contigs.

 It decomposes the reads (and their reverse complements) into overlapping k-mers,
 records the overlaps in a de Bruijn graph and then repeatedly extracts the longest
 remaining graph path, using a greedy coverage heuristic to break ties. Each path is
 collapsed to a contig, removed from the graph and written out as a FASTA record.

 STITCH can also report assembly statistics (N50 etc.) and export graphs in GFA format.`,
}

/*
  A function to add all child commands to the root command and sets flags appropriately
*/
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

/*
  A function to initalise the command line arguments
*/
func init() {
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile STITCH using the go tool pprof")
	logFile = RootCmd.PersistentFlags().String("logFile", "./stitch.log", "filename for the log file")
}
