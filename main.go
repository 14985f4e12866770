// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sitesplit repartitions a directory of multiple sequence alignments by the
// per-site cluster assignments in a CSV table, then rejoins the fragments
// into one output alignment per cluster. Site routing happens per locus;
// per-cluster fragments are then concatenated across loci after row order
// is canonicalised by sequence name.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/sitesplit/cluster"
	"github.com/biogo/sitesplit/config"
	"github.com/biogo/sitesplit/pipeline"
)

var def = config.Default()

var (
	inDir     = flag.String("in", "", "directory of input alignments, one file per locus.")
	csvPath   = flag.String("csv", "", "cluster assignment CSV with records (line, locus, position, parsimony, cluster).")
	outDir    = flag.String("out", def.OutDir, "output directory, created if absent.")
	inFormat  = flag.String("informat", def.InFormat, "input format: fasta|phylip|phylip-relaxed|phylip-sequential|clustal|nexus.")
	outFormat = flag.String("outformat", def.OutFormat, "output format, may differ from the input format.")
	alpha     = flag.String("alpha", def.Alphabet, "sequence alphabet: dna|rna|protein.")
	workers   = flag.Int("workers", def.Workers, "number of parallel workers. 0 runs sequentially.")
	strictDup = flag.Bool("strict-dup", def.StrictDup, "treat duplicate (locus, position) CSV records as an error.")
	summary   = flag.String("summary", def.Summary, "write a per-cluster parsimony summary table to this file.")
	confPath  = flag.String("config", "", "YAML configuration file. Flags given on the command line win.")
	logPath   = flag.String("log", def.LogFile, "log to this file instead of stderr.")
	verbose   = flag.Bool("v", def.Verbose, "log a line for every locus partitioned and cluster merged.")
	help      = flag.Bool("help", false, "print this usage message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("sitesplit: %v", err)
	}
	if cfg.LogFile != "" {
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			log.Fatalf("sitesplit: failed to create log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("sitesplit: %v", err)
	}

	asn, err := cluster.Load(cfg.CSV, cfg.StrictDup)
	if err != nil {
		log.Fatalf("sitesplit: %v", err)
	}
	log.Printf("loaded assignments for %d loci and %d clusters from %s",
		len(asn.Sites), len(asn.Clusters), cfg.CSV)

	files, err := pipeline.Discover(cfg.InDir, cfg.In)
	if err != nil {
		log.Fatalf("sitesplit: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("sitesplit: no alignment files found in %q", cfg.InDir)
	}

	if err := pipeline.Run(context.Background(), cfg, asn, files); err != nil {
		log.Fatalf("sitesplit: %v", err)
	}

	if cfg.Summary != "" {
		if err := writeSummary(cfg.Summary, asn); err != nil {
			log.Fatalf("sitesplit: %v", err)
		}
	}
}

// loadConfig builds the run configuration: defaults, then the YAML file if
// one is given or found, then any flag set explicitly on the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *confPath != "" {
		if err := cfg.MergeFile(*confPath); err != nil {
			return nil, err
		}
	} else if err := cfg.LoadDefault("."); err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.InDir = *inDir
		case "csv":
			cfg.CSV = *csvPath
		case "out":
			cfg.OutDir = *outDir
		case "informat":
			cfg.InFormat = *inFormat
		case "outformat":
			cfg.OutFormat = *outFormat
		case "alpha":
			cfg.Alphabet = *alpha
		case "workers":
			cfg.Workers = *workers
		case "strict-dup":
			cfg.StrictDup = *strictDup
		case "summary":
			cfg.Summary = *summary
		case "log":
			cfg.LogFile = *logPath
		case "v":
			cfg.Verbose = *verbose
		}
	})
	return cfg, nil
}

func writeSummary(path string, asn *cluster.Assignments) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cluster.WriteSummary(f, asn.Summaries()); err != nil {
		f.Close()
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return f.Close()
}
