// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align provides a column-addressable multiple sequence alignment
// container and file I/O for the formats sitesplit understands.
package align

import (
	"fmt"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// Alignment is an ordered collection of equal-length sequence rows.
// The zero value is an empty alignment with no rows and no columns.
type Alignment struct {
	Seqs []*linear.Seq
}

// New returns an Alignment holding the given rows. All rows must have the
// same length.
func New(rows []*linear.Seq) (*Alignment, error) {
	a := &Alignment{Seqs: rows}
	for i, r := range rows {
		if len(r.Seq) != len(rows[0].Seq) {
			return nil, fmt.Errorf("align: row %d %q has length %d, want %d",
				i, r.Name(), len(r.Seq), len(rows[0].Seq))
		}
	}
	return a, nil
}

// EmptyLike returns a zero-column alignment with the same rows, in the same
// order and with the same names, as a.
func EmptyLike(a *Alignment) *Alignment {
	rows := make([]*linear.Seq, len(a.Seqs))
	for i, r := range a.Seqs {
		s := linear.NewSeq(r.ID, nil, r.Alpha)
		s.Desc = r.Desc
		rows[i] = s
	}
	return &Alignment{Seqs: rows}
}

// Rows returns the number of sequence rows.
func (a *Alignment) Rows() int { return len(a.Seqs) }

// Cols returns the number of columns. An alignment with no rows has no
// columns.
func (a *Alignment) Cols() int {
	if len(a.Seqs) == 0 {
		return 0
	}
	return len(a.Seqs[0].Seq)
}

// Column returns a copy of column i, one letter per row in row order.
func (a *Alignment) Column(i int) []alphabet.Letter {
	col := make([]alphabet.Letter, len(a.Seqs))
	for j, r := range a.Seqs {
		col[j] = r.Seq[i]
	}
	return col
}

// AppendColumn appends one letter to every row. The column must hold exactly
// one letter per row, in row order.
func (a *Alignment) AppendColumn(col []alphabet.Letter) error {
	if len(col) != len(a.Seqs) {
		return fmt.Errorf("align: column has %d letters for %d rows", len(col), len(a.Seqs))
	}
	for j := range a.Seqs {
		a.Seqs[j].Seq = append(a.Seqs[j].Seq, col[j])
	}
	return nil
}

// SortByName sorts the rows by sequence name. Sorting an already sorted
// alignment leaves it unchanged.
func (a *Alignment) SortByName() {
	sort.SliceStable(a.Seqs, func(i, j int) bool {
		return a.Seqs[i].Name() < a.Seqs[j].Name()
	})
}

// Append concatenates the columns of b to the right of a, matching rows by
// position. The rows of b must agree with the rows of a in number and in
// name, position by position.
func (a *Alignment) Append(b *Alignment) error {
	if len(a.Seqs) != len(b.Seqs) {
		return fmt.Errorf("align: row counts differ: %d != %d", len(a.Seqs), len(b.Seqs))
	}
	for i, r := range a.Seqs {
		if r.Name() != b.Seqs[i].Name() {
			return fmt.Errorf("align: row %d name mismatch: %q != %q", i, r.Name(), b.Seqs[i].Name())
		}
	}
	for i, r := range b.Seqs {
		a.Seqs[i].Seq = append(a.Seqs[i].Seq, r.Seq...)
	}
	return nil
}

// Names returns the row names in row order.
func (a *Alignment) Names() []string {
	names := make([]string, len(a.Seqs))
	for i, r := range a.Seqs {
		names[i] = r.Name()
	}
	return names
}
