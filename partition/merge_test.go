// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"errors"

	check "gopkg.in/check.v1"
)

func (s *S) TestMergeCanonicalisesRowOrder(c *check.C) {
	// The two loci list the same samples in different orders.
	parts := []Part{
		{Locus: "locusA", Sub: mk(c, "s2", "AG", "s1", "AC")},
		{Locus: "locusB", Sub: mk(c, "s1", "TTT", "s2", "GGG")},
	}
	merged, err := Merge("c1", parts)
	c.Assert(err, check.IsNil)
	c.Check(merged.Rows(), check.Equals, 2)
	c.Check(merged.Cols(), check.Equals, 5)
	c.Check(merged.Names(), check.DeepEquals, []string{"s1", "s2"})
	c.Check(row(merged, "s1"), check.Equals, "ACTTT")
	c.Check(row(merged, "s2"), check.Equals, "AGGGG")
}

func (s *S) TestMergeSingleLocus(c *check.C) {
	parts := []Part{{Locus: "locusA", Sub: mk(c, "s2", "AG", "s1", "AC")}}
	merged, err := Merge("c1", parts)
	c.Assert(err, check.IsNil)
	c.Check(merged.Names(), check.DeepEquals, []string{"s1", "s2"})
	c.Check(merged.Cols(), check.Equals, 2)
}

func (s *S) TestMergeRowSetMismatch(c *check.C) {
	parts := []Part{
		{Locus: "locusA", Sub: mk(c, "s1", "AC", "s2", "AG")},
		{Locus: "locusB", Sub: mk(c, "s1", "TT", "s3", "GG")},
	}
	_, err := Merge("c1", parts)
	c.Assert(err, check.NotNil)
	var rm *RowMismatchError
	c.Assert(errors.As(err, &rm), check.Equals, true)
	c.Check(rm.Cluster, check.Equals, "c1")
	c.Check(rm.Locus, check.Equals, "locusB")
}

func (s *S) TestMergeRowCountMismatch(c *check.C) {
	parts := []Part{
		{Locus: "locusA", Sub: mk(c, "s1", "AC", "s2", "AG")},
		{Locus: "locusB", Sub: mk(c, "s1", "TT")},
	}
	_, err := Merge("c1", parts)
	var rm *RowMismatchError
	c.Assert(errors.As(err, &rm), check.Equals, true)
}

func (s *S) TestMergeNoParts(c *check.C) {
	merged, err := Merge("c1", nil)
	c.Assert(err, check.IsNil)
	c.Check(merged.Rows(), check.Equals, 0)
	c.Check(merged.Cols(), check.Equals, 0)
}
