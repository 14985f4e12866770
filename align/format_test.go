// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	check "gopkg.in/check.v1"
)

func (s *S) TestParseFormat(c *check.C) {
	for i, t := range []struct {
		in   string
		want Format
		err  string
	}{
		{in: "fasta", want: Fasta},
		{in: "FASTA", want: Fasta},
		{in: "phylip", want: Phylip},
		{in: "phylip-relaxed", want: PhylipRelaxed},
		{in: "phylip-sequential", want: PhylipSequential},
		{in: "clustal", want: Clustal},
		{in: "nexus", want: Nexus},
		{in: "stockholm", err: ".*not supported.*"},
		{in: "emboss", err: ".*not supported.*"},
		{in: "genbank", err: `align: unknown format "genbank"`},
	} {
		got, err := ParseFormat(t.in)
		if t.err != "" {
			c.Check(err, check.ErrorMatches, t.err, check.Commentf("Test %d", i))
			continue
		}
		c.Check(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(got, check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestUnsupportedFormatIsTyped(c *check.C) {
	_, err := ParseFormat("emboss")
	c.Check(errors.Is(err, ErrUnsupported), check.Equals, true)
}

func (s *S) TestParseAlphabet(c *check.C) {
	a, err := ParseAlphabet("dna")
	c.Check(err, check.IsNil)
	c.Check(a, check.Equals, alphabet.DNA)
	a, err = ParseAlphabet("protein")
	c.Check(err, check.IsNil)
	c.Check(a, check.Equals, alphabet.Protein)
	_, err = ParseAlphabet("codon")
	c.Check(err, check.ErrorMatches, `align: unknown alphabet "codon"`)
}

func (s *S) TestFastaRoundTrip(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "test.fasta")
	a := mk(c, "s1", "AC-T", "s2", "TGCA")
	c.Assert(Write(path, Fasta, a), check.IsNil)

	got, err := Read(path, Fasta, alphabet.DNA)
	c.Assert(err, check.IsNil)
	c.Check(got.Names(), check.DeepEquals, []string{"s1", "s2"})
	c.Check(rowString(got, 0), check.Equals, "AC-T")
	c.Check(rowString(got, 1), check.Equals, "TGCA")
}

func (s *S) TestPhylipRoundTrip(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "test.phylip")
	a := mk(c, "s1", "ACGT", "s2", "TGCA")
	c.Assert(Write(path, Phylip, a), check.IsNil)

	got, err := Read(path, Phylip, alphabet.DNA)
	c.Assert(err, check.IsNil)
	c.Check(got.Names(), check.DeepEquals, []string{"s1", "s2"})
	c.Check(rowString(got, 0), check.Equals, "ACGT")
	c.Check(rowString(got, 1), check.Equals, "TGCA")
}

func (s *S) TestNexusRoundTrip(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "test.nexus")
	a := mk(c, "s1", "AC-T", "s2", "TGCA")
	c.Assert(Write(path, Nexus, a), check.IsNil)

	got, err := Read(path, Nexus, alphabet.DNA)
	c.Assert(err, check.IsNil)
	c.Check(got.Names(), check.DeepEquals, []string{"s1", "s2"})
	c.Check(rowString(got, 0), check.Equals, "AC-T")
	c.Check(rowString(got, 1), check.Equals, "TGCA")
}

func (s *S) TestPhylipSequentialWrite(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "test.phylip-sequential")
	a := mk(c, "s1", "AC", "s2", "AG")
	c.Assert(Write(path, PhylipSequential, a), check.IsNil)

	b, err := os.ReadFile(path)
	c.Assert(err, check.IsNil)
	c.Check(string(b), check.Equals, "2 2\ns1 AC\ns2 AG\n")
}

func (s *S) TestReadMissingFile(c *check.C) {
	_, err := Read(filepath.Join(c.MkDir(), "absent.fasta"), Fasta, alphabet.DNA)
	c.Check(err, check.NotNil)
	var perr *os.PathError
	c.Check(errors.As(err, &perr), check.Equals, true)
}
