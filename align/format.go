// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Format identifies an alignment file format.
type Format string

const (
	Fasta            Format = "fasta"
	Phylip           Format = "phylip"
	PhylipRelaxed    Format = "phylip-relaxed"
	PhylipSequential Format = "phylip-sequential"
	Clustal          Format = "clustal"
	Nexus            Format = "nexus"
)

// ErrUnsupported is returned by ParseFormat for format names that are
// recognised but not served by the available parsers.
var ErrUnsupported = errors.New("align: format not supported by available parsers")

// ParseFormat maps a format name to a Format. Names are case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Fasta, Phylip, PhylipRelaxed, PhylipSequential, Clustal, Nexus:
		return f, nil
	case "emboss", "stockholm":
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	default:
		return "", fmt.Errorf("align: unknown format %q", s)
	}
}

// Ext returns the file extension used for files written in f.
func (f Format) Ext() string { return string(f) }

// MatchExt reports whether ext, with or without its leading dot, is a
// conventional file extension for format f.
func (f Format) MatchExt(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == string(f) {
		return true
	}
	switch f {
	case Fasta:
		switch ext {
		case "fa", "fas", "fna", "faa", "mfa":
			return true
		}
	case Phylip, PhylipRelaxed, PhylipSequential:
		switch ext {
		case "phy", "phylip":
			return true
		}
	case Clustal:
		switch ext {
		case "aln", "clu":
			return true
		}
	case Nexus:
		switch ext {
		case "nex", "nxs":
			return true
		}
	}
	return false
}

// ParseAlphabet maps an alphabet name to a bíogo alphabet.
func ParseAlphabet(s string) (alphabet.Alphabet, error) {
	switch strings.ToLower(s) {
	case "dna":
		return alphabet.DNA, nil
	case "rna":
		return alphabet.RNA, nil
	case "protein":
		return alphabet.Protein, nil
	default:
		return nil, fmt.Errorf("align: unknown alphabet %q", s)
	}
}

// Read parses the alignment at path in format f, building rows over alpha.
func Read(path string, f Format, alpha alphabet.Alphabet) (*Alignment, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var a *Alignment
	switch f {
	case Fasta:
		a, err = readFasta(in, alpha)
	default:
		a, err = readGoalign(in, f, alpha)
	}
	if err != nil {
		return nil, fmt.Errorf("align: parse %s: %w", path, err)
	}
	return a, nil
}

// Write serialises a to path in format f.
func Write(path string, f Format, a *Alignment) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	switch f {
	case Fasta:
		err = writeFasta(out, a)
	case PhylipSequential:
		err = writePhylipSequential(out, a)
	default:
		err = writeGoalign(out, f, a)
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("align: write %s: %w", path, err)
	}
	return out.Close()
}

func readFasta(in io.Reader, alpha alphabet.Alphabet) (*Alignment, error) {
	r := fasta.NewReader(in, linear.NewSeq("", nil, alpha))
	sc := seqio.NewScanner(r)
	var rows []*linear.Seq
	for sc.Next() {
		rows = append(rows, sc.Seq().(*linear.Seq))
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return New(rows)
}

func writeFasta(out io.Writer, a *Alignment) error {
	w := fasta.NewWriter(out, 60)
	for _, r := range a.Seqs {
		if _, err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// writePhylipSequential writes the sequence count and alignment length
// header followed by one name/sequence line per row.
func writePhylipSequential(out io.Writer, a *Alignment) error {
	if _, err := fmt.Fprintf(out, "%d %d\n", a.Rows(), a.Cols()); err != nil {
		return err
	}
	for _, r := range a.Seqs {
		if _, err := fmt.Fprintf(out, "%s %v\n", r.Name(), r.Seq); err != nil {
			return err
		}
	}
	return nil
}
