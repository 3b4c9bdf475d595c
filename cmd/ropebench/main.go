// Package main runs a benchmark harness over the rope package's core
// operations and reports timings as a formatted JSON document.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dshills/rope/rope"
	"github.com/tidwall/gjson"
	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	text := randomText(opts.size)
	scenarios := buildScenarios(text)

	report := []byte("{}")
	var err error
	for _, s := range scenarios {
		if !match.Match(s.name, opts.filter) {
			continue
		}
		d := s.run()
		report, err = sjson.SetBytes(report, "scenarios."+s.name+".nanoseconds", d.Nanoseconds())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to record %s: %v\n", s.name, err)
			return 1
		}
		fmt.Printf("%-28s %v\n", s.name, d)

		if opts.compare != "" {
			printComparison(opts.compare, s.name, d)
		}
	}

	report, err = sjson.SetBytes(report, "textLength", len(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to record textLength: %v\n", err)
		return 1
	}

	out := pretty.Pretty(report)
	if opts.out == "" {
		os.Stdout.Write(out)
		return 0
	}
	if err := os.WriteFile(opts.out, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write report: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	filter  string
	compare string
	out     string
	size    int
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.filter, "scenarios", "*", "Glob pattern selecting which scenarios to run")
	flag.StringVar(&opts.compare, "compare", "", "Path to a previous JSON report to diff timings against")
	flag.StringVar(&opts.out, "out", "", "Path to write the JSON report (default: stdout)")
	flag.IntVar(&opts.size, "size", 1<<20, "Size in bytes of the synthetic text to benchmark against")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ropebench - benchmark harness for the rope package\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ropebench [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func printComparison(path, name string, d time.Duration) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	prev := gjson.GetBytes(data, "scenarios."+name+".nanoseconds")
	if !prev.Exists() {
		return
	}
	prevD := time.Duration(prev.Int())
	delta := d - prevD
	fmt.Printf("  vs %s: %+v\n", path, delta)
}

type scenario struct {
	name string
	run  func() time.Duration
}

func buildScenarios(text string) []scenario {
	r := rope.FromString(text)
	n := r.Len()

	return []scenario{
		{"FromString", func() time.Duration {
			start := time.Now()
			rope.FromString(text)
			return time.Since(start)
		}},
		{"AppendSmall", func() time.Duration {
			start := time.Now()
			r.AppendString("x")
			return time.Since(start)
		}},
		{"InsertMiddle", func() time.Duration {
			start := time.Now()
			r.InsertString(n/2, "inserted text")
			return time.Since(start)
		}},
		{"DeleteMiddle", func() time.Duration {
			start := time.Now()
			r.Delete(n/2, n/2+100)
			return time.Since(start)
		}},
		{"SubSequence", func() time.Duration {
			start := time.Now()
			r.SubSequence(n/4, n/4*3)
			return time.Since(start)
		}},
		{"Reverse", func() time.Duration {
			start := time.Now()
			r.Reverse()
			return time.Since(start)
		}},
		{"IterateAll", func() time.Duration {
			start := time.Now()
			it := r.Iterator()
			for it.HasNext() {
				it.Next()
			}
			return time.Since(start)
		}},
		{"IndexOfNeedle", func() time.Duration {
			needle := text[n/2 : n/2+32]
			start := time.Now()
			r.IndexOf([]byte(needle), 0)
			return time.Since(start)
		}},
	}
}

func randomText(size int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ \n"
	var b strings.Builder
	b.Grow(size)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < size; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
