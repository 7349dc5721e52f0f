/*
	the seqio package contains custom types and methods for holding and processing nucleotide sequence data
*/
package seqio

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidAlphabet is the error returned when a sequence contains a base outside of {A,C,G,T}
var ErrInvalidAlphabet = errors.New("sequence contains a non-ACGT base")

// complementBases is the lookup table used during reverse complementation
var complementBases = [256]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// Sequence is the base type for a nucleotide read
type Sequence struct {
	ID  []byte
	Seq []byte
}

// NewSequence generates a new sequence from an identifier and the raw bases, checking the alphabet and converting bases to upper case
func NewSequence(id string, seq []byte) (*Sequence, error) {
	newSeq := &Sequence{
		ID:  []byte(id),
		Seq: append([]byte(nil), seq...),
	}
	if err := newSeq.BaseCheck(); err != nil {
		return nil, fmt.Errorf("sequence %v: %w", id, err)
	}
	return newSeq, nil
}

// BaseCheck is a method to check for ACGT bases and also to convert bases to upper case
func (Sequence *Sequence) BaseCheck() error {
	for i, j := 0, len(Sequence.Seq); i < j; i++ {
		switch base := unicode.ToUpper(rune(Sequence.Seq[i])); base {
		case 'A', 'C', 'G', 'T':
			Sequence.Seq[i] = byte(base)
		default:
			return fmt.Errorf("%w: %v (position %d)", ErrInvalidAlphabet, string(Sequence.Seq[i]), i)
		}
	}
	return nil
}

// RevComplement is a method to reverse complement the sequence, returning the result as a new sequence
func (seq *Sequence) RevComplement() (*Sequence, error) {
	rc := make([]byte, len(seq.Seq))
	for i, j := 0, len(seq.Seq)-1; j >= 0; i, j = i+1, j-1 {
		base := complementBases[seq.Seq[j]]
		if base == 0 {
			return nil, fmt.Errorf("%w: %v (position %d)", ErrInvalidAlphabet, string(seq.Seq[j]), j)
		}
		rc[i] = base
	}
	return &Sequence{ID: seq.ID, Seq: rc}, nil
}
