// Copyright 2025 The arc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/DranikiRobotics/arc/internal/golden"
	"github.com/DranikiRobotics/arc/internal/workerpool"
)

// common holds the flags shared by the subcommands that generate inputs.
type common struct {
	funcs   string
	n       int
	seed    uint64
	workers int
	verbose bool
}

func (c *common) register(flags *flag.FlagSet) {
	flags.StringVar(&c.funcs, "funcs", "all", "comma-separated function names, or all")
	flags.IntVar(&c.n, "n", 4096, "random inputs per function, on top of the edge values")
	flags.Uint64Var(&c.seed, "seed", 1, "input seed")
	flags.IntVar(&c.workers, "workers", 0, "worker goroutines (0 means GOMAXPROCS)")
	flags.BoolVar(&c.verbose, "v", false, "print timing to stderr")
}

func (c *common) options() golden.Options {
	return golden.Options{Seed: c.seed, N: c.n}
}

func newFlags(name string, stderr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	return flags
}

func logf(verbose bool, w io.Writer, format string, args ...any) {
	if verbose {
		fmt.Fprintf(w, format+"\n", args...)
	}
}

func record(args []string, stdout, stderr io.Writer) error {
	var c common
	var out string
	flags := newFlags(args[0], stderr)
	c.register(flags)
	flags.StringVar(&out, "o", "", "output file")
	if err := flags.Parse(args[1:]); err != nil {
		return errUsage
	}
	if out == "" {
		flags.Usage()
		return fmt.Errorf("%w: record needs -o", errUsage)
	}
	funcs, err := golden.Select(c.funcs)
	if err != nil {
		return err
	}

	pool := workerpool.New(c.workers)
	defer pool.Close()
	start := time.Now()
	vs := golden.Record(pool, funcs, c.options())
	logf(c.verbose, stderr, "evaluated %d vectors over %d functions in %s", len(vs), len(funcs), time.Since(start))

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := golden.Write(f, vs); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d vectors to %s\n", len(vs), out)
	return nil
}

func readVectors(name string) ([]golden.Vector, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vs, err := golden.Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return vs, nil
}

func verify(args []string, stdout, stderr io.Writer) error {
	var in string
	var workers int
	var verbose bool
	flags := newFlags(args[0], stderr)
	flags.StringVar(&in, "in", "", "golden vector file")
	flags.IntVar(&workers, "workers", 0, "worker goroutines (0 means GOMAXPROCS)")
	flags.BoolVar(&verbose, "v", false, "print timing to stderr")
	if err := flags.Parse(args[1:]); err != nil {
		return errUsage
	}
	if in == "" {
		flags.Usage()
		return fmt.Errorf("%w: verify needs -in", errUsage)
	}
	vs, err := readVectors(in)
	if err != nil {
		return err
	}

	pool := workerpool.New(workers)
	defer pool.Close()
	start := time.Now()
	if err := golden.Verify(pool, vs); err != nil {
		return err
	}
	logf(verbose, stderr, "verified in %s", time.Since(start))
	fmt.Fprintf(stdout, "ok: %d vectors match\n", len(vs))
	return nil
}

func digest(args []string, stdout, stderr io.Writer) error {
	var c common
	var in string
	flags := newFlags(args[0], stderr)
	c.register(flags)
	flags.StringVar(&in, "in", "", "digest a recorded vector file instead of live results")
	if err := flags.Parse(args[1:]); err != nil {
		return errUsage
	}

	var fps []golden.Fingerprint
	if in != "" {
		vs, err := readVectors(in)
		if err != nil {
			return err
		}
		if fps, err = golden.DigestVectors(vs); err != nil {
			return err
		}
	} else {
		funcs, err := golden.Select(c.funcs)
		if err != nil {
			return err
		}
		pool := workerpool.New(c.workers)
		defer pool.Close()
		start := time.Now()
		fps = golden.Digest(pool, funcs, c.options())
		logf(c.verbose, stderr, "digested %d functions in %s", len(funcs), time.Since(start))
	}
	for _, fp := range fps {
		fmt.Fprintln(stdout, fp)
	}
	return nil
}

func list(stdout io.Writer) error {
	for _, name := range golden.Names() {
		f, _ := golden.Lookup(name)
		args := make([]string, len(f.Args))
		for i, k := range f.Args {
			args[i] = k.String()
		}
		res := make([]string, len(f.Results))
		for i, k := range f.Results {
			res[i] = k.String()
		}
		fmt.Fprintf(stdout, "%-12s (%s) -> (%s)\n", name, strings.Join(args, ", "), strings.Join(res, ", "))
	}
	return nil
}
