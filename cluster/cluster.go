// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster loads per-site cluster assignments from a CSV table.
package cluster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Assignments holds everything sitesplit needs from the assignment CSV. It
// is built once by Load and must not be mutated afterwards; the pipeline
// shares it read-only across workers.
type Assignments struct {
	// Sites maps locus name to column position to cluster label.
	Sites map[string]map[int]string

	// Scores maps cluster label to the parsimony scores of every CSV row
	// assigned to that cluster. Used only for output naming and the
	// summary report.
	Scores map[string][]int

	// Clusters lists the distinct cluster labels seen, sorted.
	Clusters []string
}

// MalformedRowError reports a CSV row that could not be interpreted.
type MalformedRowError struct {
	Path string
	Line int
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("cluster: %s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// DuplicateSiteError reports a (locus, position) pair assigned more than
// once. It is returned only when Load runs in strict mode.
type DuplicateSiteError struct {
	Path     string
	Line     int
	Locus    string
	Position int
}

func (e *DuplicateSiteError) Error() string {
	return fmt.Sprintf("cluster: %s:%d: duplicate assignment for locus %q position %d",
		e.Path, e.Line, e.Locus, e.Position)
}

// Load reads a CSV with records (line, locus, position, parsimony, cluster).
// A header record is detected by the numeric fields of the first record
// failing integer conversion, and skipped. Records must have exactly five
// fields and integer position and parsimony values.
//
// Later records assigning an already assigned (locus, position) overwrite
// the earlier value unless strict is set, in which case they are an error.
func Load(path string, strict bool) (*Assignments, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 5
	r.TrimLeadingSpace = true

	asn := &Assignments{
		Sites:  make(map[string]map[int]string),
		Scores: make(map[string][]int),
	}
	seen := make(map[string]bool)
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var line int
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &MalformedRowError{Path: path, Line: line, Err: err}
		}
		// Records may span physical lines when fields are quoted, so the
		// reported line comes from the reader's position tracking.
		line, _ := r.FieldPos(0)
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		pos, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, &MalformedRowError{Path: path, Line: line,
				Err: fmt.Errorf("position %q is not an integer", rec[2])}
		}
		score, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, &MalformedRowError{Path: path, Line: line,
				Err: fmt.Errorf("parsimony %q is not an integer", rec[3])}
		}
		locus, label := rec[1], rec[4]

		sites, ok := asn.Sites[locus]
		if !ok {
			sites = make(map[int]string)
			asn.Sites[locus] = sites
		}
		if _, dup := sites[pos]; dup && strict {
			return nil, &DuplicateSiteError{Path: path, Line: line, Locus: locus, Position: pos}
		}
		sites[pos] = label
		asn.Scores[label] = append(asn.Scores[label], score)
		seen[label] = true
	}

	asn.Clusters = make([]string, 0, len(seen))
	for label := range seen {
		asn.Clusters = append(asn.Clusters, label)
	}
	sort.Strings(asn.Clusters)
	return asn, nil
}

// isHeader reports whether rec looks like a column header rather than data.
func isHeader(rec []string) bool {
	_, posErr := strconv.Atoi(rec[2])
	_, scoreErr := strconv.Atoi(rec[3])
	return posErr != nil && scoreErr != nil
}

// Bounds returns the minimum and maximum parsimony score recorded for the
// cluster. ok is false if the cluster has no scores.
func (a *Assignments) Bounds(label string) (min, max int, ok bool) {
	scores := a.Scores[label]
	if len(scores) == 0 {
		return 0, 0, false
	}
	min, max = scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max, true
}
