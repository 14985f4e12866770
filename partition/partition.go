// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition splits alignments column-wise by cluster assignment and
// merges the per-cluster fragments back into one alignment per cluster.
package partition

import (
	"fmt"

	"github.com/biogo/sitesplit/align"
	"github.com/biogo/sitesplit/cluster"
)

// Partial is the outcome of partitioning one locus: the sub-alignments for
// the clusters that received at least one of the locus's columns.
type Partial struct {
	Locus string
	Sub   map[string]*align.Alignment
}

// MissingAssignmentError reports an alignment column with no entry in the
// assignment table.
type MissingAssignmentError struct {
	Locus  string
	Column int
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("partition: no cluster assignment for locus %q column %d", e.Locus, e.Column)
}

// Split partitions the columns of a into per-cluster sub-alignments. Columns
// are visited in ascending order so each sub-alignment preserves the source
// column order. Every cluster known to asn gets an accumulator; clusters
// that receive no columns are dropped from the result.
func Split(locus string, a *align.Alignment, asn *cluster.Assignments) (*Partial, error) {
	sub := make(map[string]*align.Alignment, len(asn.Clusters))
	for _, label := range asn.Clusters {
		sub[label] = align.EmptyLike(a)
	}

	sites := asn.Sites[locus]
	for c := 0; c < a.Cols(); c++ {
		label, ok := sites[c]
		if !ok {
			return nil, &MissingAssignmentError{Locus: locus, Column: c}
		}
		acc, ok := sub[label]
		if !ok {
			// Assignments built by cluster.Load always pre-create this,
			// but hand-built tables may not.
			acc = align.EmptyLike(a)
			sub[label] = acc
		}
		if err := acc.AppendColumn(a.Column(c)); err != nil {
			return nil, fmt.Errorf("partition: locus %q column %d: %w", locus, c, err)
		}
	}

	for label, s := range sub {
		if s.Cols() == 0 {
			delete(sub, label)
		}
	}
	return &Partial{Locus: locus, Sub: sub}, nil
}
