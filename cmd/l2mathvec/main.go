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

// Command l2mathvec records, verifies and fingerprints golden vectors of the
// l2math kernel.
//
//	l2mathvec record -funcs sin,cos -n 100000 -o testdata/trig.l2gv
//	l2mathvec verify -in testdata/trig.l2gv
//	l2mathvec digest -funcs all
//	l2mathvec digest -in testdata/trig.l2gv
//	l2mathvec list
//
// A digest printed on one machine must match the digest printed on any other
// machine for the same seed and count.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage:\n")
	fmt.Fprintf(w, "    %s record [-funcs <list>] [-n <count>] [-seed <seed>] [-workers <n>] -o <file>\n", os.Args[0])
	fmt.Fprintf(w, "        evaluate the kernel and write golden vectors\n")
	fmt.Fprintf(w, "    %s verify [-workers <n>] -in <file>\n", os.Args[0])
	fmt.Fprintf(w, "        re-evaluate recorded vectors and report the first mismatch\n")
	fmt.Fprintf(w, "    %s digest [-funcs <list>] [-n <count>] [-seed <seed>] [-in <file>]\n", os.Args[0])
	fmt.Fprintf(w, "        print a result fingerprint per function\n")
	fmt.Fprintf(w, "    %s list\n", os.Args[0])
	fmt.Fprintf(w, "        print the function registry\n")
}

// run executes one subcommand; args excludes the program name.
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	switch args[0] {
	case "record":
		return record(args, stdout, stderr)
	case "verify":
		return verify(args, stdout, stderr)
	case "digest":
		return digest(args, stdout, stderr)
	case "list":
		return list(stdout)
	case "help", "-h", "-help":
		usage(stdout)
		return nil
	}
	usage(stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// A bare errUsage has already printed its usage text.
		if err != errUsage {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
