package seqio

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/bgzf"
)

// fastaLineWidth is the line wrap used when writing FASTA records
const fastaLineWidth = 80

// ReadGroup holds a named set of reads (e.g. one sequencing library)
type ReadGroup struct {
	Name  string
	Reads []*Sequence
}

// LoadReadFile loads all the reads in a file into a single read group
// the format is determined from the file extension (fasta/fastq/bam); fasta and fastq files may be gzipped
func LoadReadFile(path string) (*ReadGroup, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	var r io.Reader = fh
	trimmed := path
	if strings.HasSuffix(path, ".bam.gz") {
		// BAM is already BGZF-compressed, so an extra gzip layer is never valid
		return nil, fmt.Errorf("refusing to read gzipped BAM (BAM is already compressed): %v", path)
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
		trimmed = strings.TrimSuffix(path, ".gz")
	}
	group := &ReadGroup{Name: filepath.Base(path)}
	switch filepath.Ext(trimmed) {
	case ".fasta", ".fa", ".fna":
		err = group.loadFasta(r)
	case ".fastq", ".fq":
		err = group.loadFastq(r)
	case ".bam":
		ok, err := bgzf.HasEOF(fh)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Printf("file %q has no bgzf magic block: may be truncated", path)
		}
		return group, group.loadBam(fh)
	default:
		return nil, fmt.Errorf("unrecognised read file extension: %v", path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not load %v: %v", path, err)
	}
	return group, nil
}

// loadFasta collects all the records of a FASTA file into the read group
func (group *ReadGroup) loadFasta(r io.Reader) error {
	reader := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	scanner := bioseqio.NewScanner(reader)
	for scanner.Next() {
		s := scanner.Seq().(*linear.Seq)
		read, err := NewSequence(s.Name(), []byte(s.Seq.String()))
		if err != nil {
			return err
		}
		group.Reads = append(group.Reads, read)
	}
	return scanner.Error()
}

// loadFastq collects all the records of a FASTQ file into the read group, dropping the quality scores
func (group *ReadGroup) loadFastq(r io.Reader) error {
	reader := fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger))
	scanner := bioseqio.NewScanner(reader)
	for scanner.Next() {
		s := scanner.Seq().(*linear.QSeq)
		seq := make([]byte, len(s.Seq))
		for i, ql := range s.Seq {
			seq[i] = byte(ql.L)
		}
		read, err := NewSequence(s.Name(), seq)
		if err != nil {
			return err
		}
		group.Reads = append(group.Reads, read)
	}
	return scanner.Error()
}

// loadBam collects all the records of an unaligned BAM file into the read group
func (group *ReadGroup) loadBam(r io.Reader) error {
	b, err := bam.NewReader(r, 0)
	if err != nil {
		return err
	}
	defer b.Close()
	for {
		record, err := b.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading bam: %v", err)
		}
		read, err := NewSequence(record.Name, record.Seq.Expand())
		if err != nil {
			return err
		}
		group.Reads = append(group.Reads, read)
	}
	return nil
}

// ContigWriter writes contigs as labelled FASTA records (>contig_i) to an underlying writer
type ContigWriter struct {
	writer  *fasta.Writer
	counter int
}

// NewContigWriter wraps a writer so that contigs can be streamed out as they are extracted
func NewContigWriter(w io.Writer) *ContigWriter {
	return &ContigWriter{writer: fasta.NewWriter(w, fastaLineWidth)}
}

// Write appends the next contig record, labelling it with the number of contigs written so far
func (ContigWriter *ContigWriter) Write(contig []byte) error {
	label := fmt.Sprintf("contig_%d", ContigWriter.counter)
	s := linear.NewSeq(label, alphabet.BytesToLetters(contig), alphabet.DNA)
	if _, err := ContigWriter.writer.Write(s); err != nil {
		return err
	}
	ContigWriter.counter++
	return nil
}
