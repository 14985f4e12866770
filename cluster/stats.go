// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the parsimony scores recorded for one cluster.
type Summary struct {
	Cluster string
	Sites   int
	Min     int
	Max     int
	Mean    float64
	StdDev  float64
}

// Summaries returns one Summary per cluster, in Clusters order.
func (a *Assignments) Summaries() []Summary {
	sums := make([]Summary, 0, len(a.Clusters))
	for _, label := range a.Clusters {
		scores := a.Scores[label]
		xs := make([]float64, len(scores))
		for i, s := range scores {
			xs[i] = float64(s)
		}
		min, max, _ := a.Bounds(label)
		var sd float64
		if len(xs) > 1 {
			sd = stat.StdDev(xs, nil)
		}
		sums = append(sums, Summary{
			Cluster: label,
			Sites:   len(scores),
			Min:     min,
			Max:     max,
			Mean:    stat.Mean(xs, nil),
			StdDev:  sd,
		})
	}
	return sums
}

// WriteSummary writes the summaries as a tab separated table with a header.
func WriteSummary(w io.Writer, sums []Summary) error {
	if _, err := fmt.Fprintln(w, "cluster\tsites\tmin\tmax\tmean\tstddev"); err != nil {
		return err
	}
	for _, s := range sums {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.4f\t%.4f\n",
			s.Cluster, s.Sites, s.Min, s.Max, s.Mean, s.StdDev)
		if err != nil {
			return err
		}
	}
	return nil
}
