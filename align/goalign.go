// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	galign "github.com/evolbioinfo/goalign/align"
	"github.com/evolbioinfo/goalign/io/clustal"
	"github.com/evolbioinfo/goalign/io/nexus"
	"github.com/evolbioinfo/goalign/io/phylip"
)

// goalign supplies the parsers and writers for the formats bíogo does not
// cover. Conversion between the two representations happens here and
// nowhere else.

func readGoalign(in io.Reader, f Format, alpha alphabet.Alphabet) (*Alignment, error) {
	var (
		ga  galign.Alignment
		err error
	)
	switch f {
	case Phylip:
		ga, err = phylip.NewParser(in, true).Parse()
	case PhylipRelaxed, PhylipSequential:
		ga, err = phylip.NewParser(in, false).Parse()
	case Clustal:
		ga, err = clustal.NewParser(in).Parse()
	case Nexus:
		ga, err = nexus.NewParser(in).Parse()
	default:
		return nil, fmt.Errorf("align: no parser for format %q", f)
	}
	if err != nil {
		return nil, err
	}

	var rows []*linear.Seq
	ga.Iterate(func(name, sequence string) bool {
		rows = append(rows, linear.NewSeq(name, alphabet.BytesToLetters([]byte(sequence)), alpha))
		return false
	})
	return New(rows)
}

func writeGoalign(out io.Writer, f Format, a *Alignment) error {
	ga, err := toGoalign(a)
	if err != nil {
		return err
	}
	var s string
	switch f {
	case Phylip:
		s = phylip.WriteAlignment(ga, true, false, false)
	case PhylipRelaxed:
		s = phylip.WriteAlignment(ga, false, false, false)
	case Clustal:
		s = clustal.WriteAlignment(ga)
	case Nexus:
		s = nexus.WriteAlignment(ga)
	default:
		return fmt.Errorf("align: no writer for format %q", f)
	}
	_, err = io.WriteString(out, s)
	return err
}

func toGoalign(a *Alignment) (galign.Alignment, error) {
	var kind = galign.NUCLEOTIDS
	if len(a.Seqs) != 0 && a.Seqs[0].Alpha == alphabet.Protein {
		kind = galign.AMINOACIDS
	}
	ga := galign.NewAlign(kind)
	for _, r := range a.Seqs {
		if err := ga.AddSequence(r.Name(), r.Seq.String(), ""); err != nil {
			return nil, err
		}
	}
	return ga, nil
}
