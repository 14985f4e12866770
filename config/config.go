// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the sitesplit run configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/sitesplit/align"
)

// Error is a configuration error. All validation failures are of this type.
type Error string

func (e Error) Error() string { return "config: " + string(e) }

// Config is the full configuration surface of a sitesplit run. The string
// fields are settable from flags or a YAML file; Validate derives the typed
// fields from them.
type Config struct {
	InDir     string `yaml:"in"`
	CSV       string `yaml:"csv"`
	OutDir    string `yaml:"out"`
	InFormat  string `yaml:"informat"`
	OutFormat string `yaml:"outformat"`
	Alphabet  string `yaml:"alphabet"`
	Workers   int    `yaml:"workers"`
	StrictDup bool   `yaml:"strictdup"`
	Summary   string `yaml:"summary"`
	Verbose   bool   `yaml:"verbose"`
	LogFile   string `yaml:"log"`

	In    align.Format      `yaml:"-"`
	Out   align.Format      `yaml:"-"`
	Alpha alphabet.Alphabet `yaml:"-"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		OutDir:    ".",
		InFormat:  "fasta",
		OutFormat: "fasta",
		Alphabet:  "dna",
	}
}

// MergeFile overlays the YAML document at path onto c. Keys absent from the
// file leave the corresponding fields untouched.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// LoadDefault overlays sitesplit.yml or sitesplit.yaml from dir onto c if
// either exists. A missing file is not an error.
func (c *Config) LoadDefault(dir string) error {
	for _, name := range []string{"sitesplit.yml", "sitesplit.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return c.MergeFile(path)
	}
	return nil
}

// Validate checks the configuration and derives the typed format and
// alphabet fields. Worker counts beyond the available hardware parallelism
// are rejected here, before any work begins.
func (c *Config) Validate() error {
	if c.InDir == "" {
		return Error("no alignment directory given")
	}
	if c.CSV == "" {
		return Error("no cluster CSV given")
	}
	if c.Workers < 0 {
		return Error(fmt.Sprintf("invalid worker count %d", c.Workers))
	}
	if ncpu := runtime.NumCPU(); c.Workers > ncpu {
		return Error(fmt.Sprintf("%d workers requested but only %d CPUs available", c.Workers, ncpu))
	}

	var err error
	if c.In, err = align.ParseFormat(c.InFormat); err != nil {
		return Error(err.Error())
	}
	if c.Out, err = align.ParseFormat(c.OutFormat); err != nil {
		return Error(err.Error())
	}
	if c.Alpha, err = align.ParseAlphabet(c.Alphabet); err != nil {
		return Error(err.Error())
	}
	return nil
}
