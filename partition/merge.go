// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"fmt"

	"github.com/biogo/sitesplit/align"
)

// Part is one locus's contribution to a cluster.
type Part struct {
	Locus string
	Sub   *align.Alignment
}

// RowMismatchError reports a locus whose row names disagree with the loci
// merged before it into the same cluster.
type RowMismatchError struct {
	Cluster string
	Locus   string
	Err     error
}

func (e *RowMismatchError) Error() string {
	return fmt.Sprintf("partition: cluster %q: locus %q rows do not match earlier loci: %v",
		e.Cluster, e.Locus, e.Err)
}

func (e *RowMismatchError) Unwrap() error { return e.Err }

// Merge concatenates the parts of one cluster, in order, into a single
// alignment. Each part's rows are first sorted by name so that loci that
// enumerate the same samples in different orders still concatenate
// row-for-row. All parts must carry the same set of row names.
//
// The parts are consumed: their row order is canonicalised in place and the
// first part becomes the backbone of the result.
func Merge(label string, parts []Part) (*align.Alignment, error) {
	var merged *align.Alignment
	for _, p := range parts {
		p.Sub.SortByName()
		if merged == nil {
			merged = p.Sub
			continue
		}
		if err := merged.Append(p.Sub); err != nil {
			return nil, &RowMismatchError{Cluster: label, Locus: p.Locus, Err: err}
		}
	}
	if merged == nil {
		merged = &align.Alignment{}
	}
	return merged, nil
}
