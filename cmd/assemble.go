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
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mholt/archiver"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/stitch-bio/stitch/src/dbg"
	"github.com/stitch-bio/stitch/src/misc"
	"github.com/stitch-bio/stitch/src/seqio"
	"github.com/stitch-bio/stitch/src/version"
)

// the command line arguments
var (
	readFiles      *[]string                                                              // list of read files to assemble
	kmerSize       *int                                                                   // size of k-mer
	maxContigs     *int                                                                   // maximum number of contigs to extract
	outFile        *string                                                                // FASTA file to write the contigs to
	graphDump      *string                                                                // optional file to dump the de Bruijn graph to
	defaultOutFile = "./stitch-contigs-" + string(time.Now().Format("20060102150405")) + ".fasta" // a default file to store the contigs
)

// the extensions recognised as read files
var readFileExts = []string{"fasta", "fa", "fna", "fastq", "fq", "bam", "tar"}

// the assemble command (used by cobra)
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a set of reads into contigs using a de Bruijn graph",
	Long:  `Assemble a set of reads into contigs using a de Bruijn graph`,
	Run: func(cmd *cobra.Command, args []string) {
		runAssemble()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	readFiles = assembleCmd.Flags().StringSliceP("reads", "f", []string{}, "read file(s) to assemble (FASTA/FASTQ/BAM, optionally gzipped, or a tar archive of these) - required")
	kmerSize = assembleCmd.Flags().IntP("kmerSize", "k", 25, "size of k-mer")
	maxContigs = assembleCmd.Flags().IntP("maxContigs", "m", 20, "maximum number of contigs to extract")
	outFile = assembleCmd.Flags().StringP("outFile", "o", defaultOutFile, "FASTA file to write the contigs to")
	graphDump = assembleCmd.Flags().String("graphDump", "", "write the de Bruijn graph to this file once it has been built")
	assembleCmd.MarkFlagRequired("reads")
	RootCmd.AddCommand(assembleCmd)
}

//  a function to check user supplied parameters
func assembleParamCheck() error {
	if *kmerSize < 1 {
		return fmt.Errorf("supplied k-mer size must be a positive integer: %d", *kmerSize)
	}
	if *maxContigs < 1 {
		return fmt.Errorf("supplied maximum contig count must be a positive integer: %d", *maxContigs)
	}
	for _, file := range *readFiles {
		if err := misc.CheckFile(file); err != nil {
			return err
		}
		if err := misc.CheckExt(file, readFileExts); err != nil {
			return err
		}
	}
	return nil
}

// a function to unpack any tarred read sets, replacing each archive in the file list with its contents
func unpackReadArchives(files []string) ([]string, error) {
	unpacked := []string{}
	for _, file := range files {
		if !strings.HasSuffix(file, ".tar") && !strings.HasSuffix(file, ".tar.gz") {
			unpacked = append(unpacked, file)
			continue
		}
		tmpDir, err := ioutil.TempDir("", "stitch-reads")
		if err != nil {
			return nil, err
		}
		if err := archiver.Unarchive(file, tmpDir); err != nil {
			return nil, fmt.Errorf("could not unpack the read archive %v: %v", file, err)
		}
		found := 0
		err = filepath.Walk(tmpDir, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if f.IsDir() || f.Size() == 0 {
				return nil
			}
			if misc.CheckExt(path, readFileExts) == nil {
				unpacked = append(unpacked, path)
				found++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if found == 0 {
			return nil, fmt.Errorf("no read files found in the archive: %v", file)
		}
		log.Printf("\tunpacked %d read file(s) from %v", found, file)
	}
	return unpacked, nil
}

/*
  The main function for the assemble sub-command
*/
func runAssemble() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is stitch (version %s)", version.GetVersion())
	log.Printf("starting the assemble subcommand")
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(assembleParamCheck())
	log.Printf("\tk-mer size: %d", *kmerSize)
	log.Printf("\tmaximum number of contigs: %d", *maxContigs)
	for _, file := range *readFiles {
		log.Printf("\tinput file: %v", file)
	}
	///////////////////////////////////////////////////////////////////////////////////////
	// load the reads, one group per input file
	log.Printf("loading reads...")
	files, err := unpackReadArchives(*readFiles)
	misc.ErrorCheck(err)
	readGroups := []*seqio.ReadGroup{}
	readCount, lengthTotal := 0, 0
	for _, file := range files {
		group, err := seqio.LoadReadFile(file)
		misc.ErrorCheck(err)
		log.Printf("\tread group %v: %d reads", group.Name, len(group.Reads))
		readGroups = append(readGroups, group)
		for _, read := range group.Reads {
			readCount++
			lengthTotal += len(read.Seq)
		}
	}
	if readCount != 0 {
		log.Printf("\ttotal reads: %d (mean length: %d)", readCount, lengthTotal/readCount)
	}
	///////////////////////////////////////////////////////////////////////////////////////
	// build the de Bruijn graph
	log.Printf("building the de Bruijn graph...")
	graph, err := dbg.NewGraph(*kmerSize, readGroups)
	misc.ErrorCheck(err)
	log.Printf("\tnumber of nodes: %d", graph.NumNodes)
	log.Printf("\t%v", misc.PrintMemUsage())
	if *graphDump != "" {
		misc.ErrorCheck(graph.Dump(*graphDump))
		log.Printf("\tsaved graph to %v", *graphDump)
	}
	///////////////////////////////////////////////////////////////////////////////////////
	// extract the contigs, longest first, until the graph is empty or the contig budget is spent
	log.Printf("extracting contigs...")
	outFH, err := os.Create(*outFile)
	misc.ErrorCheck(err)
	defer outFH.Close()
	contigWriter := seqio.NewContigWriter(outFH)
	contigCount := 0
	for i := 0; i < *maxContigs; i++ {
		contig := graph.NextContig()
		if len(contig) == 0 {
			break
		}
		misc.ErrorCheck(contigWriter.Write(contig))
		log.Printf("\tcontig_%d: %d bases", i, len(contig))
		contigCount++
	}
	log.Printf("\tnumber of contigs extracted: %d", contigCount)
	log.Printf("\tremaining graph nodes: %d", graph.NumNodes)
	log.Printf("saved contigs to %v", *outFile)
	log.Println("finished")
}
