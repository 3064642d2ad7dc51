// Package dnaseq loads sequences from FASTA files and bridges them to
// biogo's Seq type for cross-checking against an exact aligner.
//
// This is an adaptation of the teacher's sequence.go/fasta.go: the
// compression-era linking fields (Links, linkLock) are gone since nothing
// here builds a compressed database, but the FASTA-to-Seq plumbing and the
// upper-casing newSeq constructor are kept as the teacher wrote them.
package dnaseq

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	tuftsseq "github.com/TuftsBCB/seq"
	biogoseq "github.com/kortschak/biogo/seq"
)

// Sequence is a named run of residues read from a FASTA record.
type Sequence struct {
	Name     string
	Residues []byte
	Offset   int
	ID       int
}

// NewSequence upper-cases residues and strips stop-codon '*' markers, the
// same normalization the teacher's newSeq applied before handing sequences
// to the aligner.
func NewSequence(id int, name string, residues []byte) *Sequence {
	residuesStr := strings.ToUpper(string(residues))
	residuesStr = strings.Replace(residuesStr, "*", "", -1)
	return &Sequence{
		Name:     name,
		Residues: []byte(residuesStr),
		Offset:   0,
		ID:       id,
	}
}

// Biogo returns a *biogoseq.Seq view of this sequence, for handing to
// biogo's Needleman-Wunsch aligner.
func (s *Sequence) Biogo() *biogoseq.Seq {
	return biogoseq.New(s.Name, s.Residues, nil)
}

// Len returns the number of residues in this sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// SubSequence returns the inclusive-exclusive range [start, end) of this
// sequence as a new Sequence whose Offset is relative to the original.
func (s *Sequence) SubSequence(start, end int) *Sequence {
	if start < 0 || start >= end || end > s.Len() {
		panic(fmt.Sprintf("invalid subsequence (%d, %d) for sequence with length %d",
			start, end, s.Len()))
	}
	sub := NewSequence(s.ID, s.Name, s.Residues[start:end])
	sub.Offset = s.Offset + start
	return sub
}

func (s *Sequence) String() string {
	if s.Offset == 0 {
		return fmt.Sprintf("> %s (%d)\n%s", s.Name, s.ID, string(s.Residues))
	}
	return fmt.Sprintf("> %s (%d) (%d, %d)\n%s", s.Name, s.ID, s.Offset, s.Len(), string(s.Residues))
}

// SeqIdentity computes the percent identity (0-100) of two equal-length
// residue slices, comparing them position by position; gap characters are
// not treated specially and count like any other byte. It panics if the lengths differ,
// matching the teacher's SeqIdentity contract.
func SeqIdentity(seq1, seq2 []byte) int {
	if len(seq1) != len(seq2) {
		log.Panicf("sequence identity requires len(seq1) == len(seq2), but %d != %d",
			len(seq1), len(seq2))
	}
	if len(seq1) == 0 {
		return 0
	}
	same := 0
	for i, r1 := range seq1 {
		if r1 == seq2[i] {
			same++
		}
	}
	return (same * 100) / len(seq1)
}

// ReadAll reads every record from a FASTA file, transparently gunzipping
// files named with a ".gz" suffix, mirroring the teacher's
// ReadOriginalSeqs driver minus its channel-based streaming (alignment
// runs here work over the whole sequence up front, not record-at-a-time).
func ReadAll(fileName string) ([]*Sequence, error) {
	var r io.Reader
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r = f

	if strings.HasSuffix(fileName, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	reader := fasta.NewReader(r)
	var seqs []*Sequence
	for i := 0; ; i++ {
		var rec *tuftsseq.Sequence
		rec, err = reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, fromTuftsSeq(i, rec))
	}
	return seqs, nil
}

// fromTuftsSeq adapts a github.com/TuftsBCB/seq.Sequence record — the type
// github.com/TuftsBCB/io/fasta's Reader.Read hands back — into our own
// Sequence. The teacher imports TuftsBCB/seq explicitly for this same record
// type wherever it names it directly (translate.go, cmd/mica-xsearch's
// utils-xsearch.go); this does the same rather than leaving the dependency
// on an unnamed type inferred from fasta's return value.
func fromTuftsSeq(id int, rec *tuftsseq.Sequence) *Sequence {
	return NewSequence(id, rec.Name, rec.Residues)
}
