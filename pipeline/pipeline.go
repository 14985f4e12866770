// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline runs the two-phase partition and merge over a set of
// locus alignment files.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/biogo/sitesplit/align"
	"github.com/biogo/sitesplit/cluster"
	"github.com/biogo/sitesplit/config"
	"github.com/biogo/sitesplit/partition"
)

// LocusFile is one discovered alignment file. The locus name is the file's
// base name with the extension stripped.
type LocusFile struct {
	Locus string
	Path  string
}

// Discover lists the alignment files in dir in name order. Directories, dot
// files and files whose extension is not conventional for format f are
// skipped, so stray non-alignment files in the input directory are ignored.
func Discover(dir string, f align.Format) ([]LocusFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []LocusFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !f.MatchExt(filepath.Ext(name)) {
			continue
		}
		files = append(files, LocusFile{
			Locus: strings.TrimSuffix(name, filepath.Ext(name)),
			Path:  filepath.Join(dir, name),
		})
	}
	return files, nil
}

// Run partitions every locus file by its cluster assignments and then merges
// and writes one alignment per cluster.
//
// Phase one fans the partitioner out over the files with at most
// cfg.Workers concurrent workers (one worker when sequential). All phase one
// results are collected before any merge starts: a merge needs every locus's
// contribution to its cluster. Partial results are regrouped by cluster in
// file discovery order, so output column order does not depend on worker
// completion order. The first error aborts the run; output files already
// written stay on disk.
func Run(ctx context.Context, cfg *config.Config, asn *cluster.Assignments, files []LocusFile) error {
	rep := NewReporter()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range rep.Events() {
			if cfg.Verbose {
				log.Printf("%v %q", ev.Phase, ev.Name)
			}
		}
	}()
	defer func() {
		rep.Close()
		<-done
	}()

	limit := cfg.Workers
	if limit < 1 {
		limit = 1
	}

	partials := make([]*partition.Partial, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, lf := range files {
		i, lf := i, lf
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := align.Read(lf.Path, cfg.In, cfg.Alpha)
			if err != nil {
				return fmt.Errorf("pipeline: locus %q: %w", lf.Locus, err)
			}
			p, err := partition.Split(lf.Locus, a, asn)
			if err != nil {
				return fmt.Errorf("pipeline: %w", err)
			}
			partials[i] = p
			rep.Emit(Event{Phase: PhasePartition, Name: lf.Locus})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Barrier passed: every locus is partitioned. Group contributions by
	// cluster, preserving discovery order within each group.
	groups := make(map[string][]partition.Part)
	for _, p := range partials {
		for _, label := range asn.Clusters {
			if sub, ok := p.Sub[label]; ok {
				groups[label] = append(groups[label], partition.Part{Locus: p.Locus, Sub: sub})
			}
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(limit)
	var written int
	for _, label := range asn.Clusters {
		parts := groups[label]
		if len(parts) == 0 {
			continue
		}
		written++
		label, parts := label, parts
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			merged, err := partition.Merge(label, parts)
			if err != nil {
				return fmt.Errorf("pipeline: %w", err)
			}
			if err := writeCluster(cfg, asn, label, merged); err != nil {
				return fmt.Errorf("pipeline: cluster %q: %w", label, err)
			}
			rep.Emit(Event{Phase: PhaseMerge, Name: label})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("partitioned %d loci into %d cluster alignments", len(files), written)
	return nil
}

// writeCluster writes one merged cluster alignment, naming the file with the
// cluster label and the parsimony score bounds recorded from the CSV.
func writeCluster(cfg *config.Config, asn *cluster.Assignments, label string, a *align.Alignment) error {
	min, max, ok := asn.Bounds(label)
	if !ok {
		return fmt.Errorf("no parsimony scores recorded for cluster %q", label)
	}
	name := fmt.Sprintf("cluster-%s_site-count-%d-to-%d.%s", label, min, max, cfg.Out.Ext())
	return align.Write(filepath.Join(cfg.OutDir, name), cfg.Out, a)
}
