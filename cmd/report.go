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
	"github.com/stitch-bio/stitch/src/misc"
	"github.com/stitch-bio/stitch/src/seqio"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// the command line arguments
var (
	contigFile *string // the contig FASTA file to report on
	plotSwitch *bool   // plot the contig length distribution
	plotFile   *string // filename for the contig length plot
)

// the report command (used by cobra)
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report assembly statistics (N50 etc.) for a contig FASTA file",
	Long:  `Report assembly statistics (N50 etc.) for a contig FASTA file`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	contigFile = reportCmd.Flags().StringP("contigFile", "c", "", "contig FASTA file to report on - required")
	plotSwitch = reportCmd.Flags().Bool("plot", false, "save a histogram of the contig length distribution")
	plotFile = reportCmd.Flags().String("plotFile", "./stitch-contig-lengths.png", "filename for the contig length histogram")
	reportCmd.MarkFlagRequired("contigFile")
	RootCmd.AddCommand(reportCmd)
}

//  a function to check user supplied parameters
func reportParamCheck() error {
	if err := misc.CheckFile(*contigFile); err != nil {
		return err
	}
	return misc.CheckExt(*contigFile, []string{"fasta", "fa", "fna"})
}

// a function to plot the contig length distribution
func plotLengths(lengths []int) error {
	values := make(plotter.Values, len(lengths))
	for i, length := range lengths {
		values[i] = float64(length)
	}
	lengthPlot, err := plot.New()
	if err != nil {
		return err
	}
	lengthPlot.Title.Text = "contig length distribution"
	lengthPlot.X.Label.Text = "contig length (bases)"
	lengthPlot.Y.Label.Text = "frequency"
	hist, err := plotter.NewHist(values, 16)
	if err != nil {
		return err
	}
	lengthPlot.Add(hist)
	return lengthPlot.Save(8*vg.Inch, 8*vg.Inch, *plotFile)
}

/*
  The main function for the report sub-command
*/
func runReport() {
	misc.ErrorCheck(reportParamCheck())
	// the contigs are loaded just like a read set - only their lengths are needed here
	contigs, err := seqio.LoadReadFile(*contigFile)
	misc.ErrorCheck(err)
	lengths := make([]int, len(contigs.Reads))
	longest := 0
	for i, contig := range contigs.Reads {
		lengths[i] = len(contig.Seq)
		if lengths[i] > longest {
			longest = lengths[i]
		}
	}
	// print the report to STDOUT
	fmt.Printf("file\t%v\n", *contigFile)
	fmt.Printf("contigs\t%d\n", len(lengths))
	fmt.Printf("total length\t%d\n", misc.SumLengths(lengths))
	fmt.Printf("longest contig\t%d\n", longest)
	fmt.Printf("N50\t%d\n", misc.N50(lengths))
	if *plotSwitch {
		misc.ErrorCheck(plotLengths(lengths))
		fmt.Printf("saved contig length histogram to: %v\n", *plotFile)
	}
}
