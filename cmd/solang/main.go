// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/Setheum-Labs/solang/internal/diag"
	"github.com/Setheum-Labs/solang/internal/parser"
	"github.com/Setheum-Labs/solang/internal/sema"
)

func main() {
	targetName := flag.String("target", "substrate", "target platform: substrate, ewasm, generic or solana")
	emit := flag.String("emit", "", "print compiler state: ast or resolved")
	verbose := flag.Bool("v", false, "show debug messages")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	target, ok := sema.ParseTarget(*targetName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown target ‘%s’\n", *targetName)
		os.Exit(2)
	}

	switch *emit {
	case "", "ast", "resolved":
	default:
		fmt.Fprintf(os.Stderr, "unknown emit mode ‘%s’\n", *emit)
		os.Exit(2)
	}

	startTime := time.Now()

	ns := sema.NewNamespace(target)
	sources := make(map[int]string)
	failed := false

	for _, path := range flag.Args() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			os.Exit(1)
		}

		fileNo := ns.AddFile(path)
		sources[fileNo] = string(source)

		unit, parseDiagnostics := parser.ParseSource(fileNo, path, string(source))
		ns.Diagnostics.Extend(parseDiagnostics)
		if unit == nil {
			failed = true
			continue
		}

		if *emit == "ast" {
			for _, contract := range unit.Contracts {
				fmt.Printf("%s %s with %d parts\n", contract.Kind, contract.Name.Name, len(contract.Parts))
			}
		}

		ns.ResolveSourceUnit(fileNo, unit)
	}

	reporter := diag.NewReporter(ns.Files, sources)
	reporter.Verbose = *verbose
	reporter.Print(os.Stderr, ns.Diagnostics)

	if failed || ns.Diagnostics.HasErrors() {
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	if *emit == "resolved" {
		fmt.Print(ns.DumpNamespace())
	}

	color.Green("Successfully processed %d files for %s in %s",
		flag.NArg(), ns.Target, formatDuration(time.Since(startTime)))
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: solang [options] <file.sol>...")
	flag.PrintDefaults()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
