package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spektr-org/tabular/table"
)

// ============================================================================
// TABULAR CLI — parse a table, mutate it, export it
// ============================================================================

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Path to CSV or JSON data file (required)")
	inFormat := flag.String("in", "", "Input format: csv or json (default: by file extension)")
	header := flag.Bool("header", false, "Treat the first row as column headers")
	total := flag.Bool("total", false, "Append an elementwise sum row of all data rows")
	find := flag.String("find", "", "Report the first (row,col) holding this value")
	format := flag.String("format", "csv", "Output format: csv, json, pretty")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tabular — in-memory tables with exact decimal arithmetic

Usage:
  tabular --file data.csv --total --format csv
  tabular --file data.json --header --format pretty
  tabular --file data.csv --find 42

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tabular %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Read data ─────────────────────────────────────────────────────────
	data, err := os.ReadFile(*filePath)
	if err != nil {
		fatalf("Failed to read file: %v", err)
	}

	var opts []table.Option
	if *header {
		opts = append(opts, table.WithHeaderRow())
	}

	var t *table.Table
	switch resolveFormat(*inFormat, *filePath) {
	case "json":
		t, err = table.ParseJSON(data, opts...)
	default:
		t, err = table.ParseCSV(data, opts...)
	}
	if err != nil {
		fatalf("Parse failed: %v", err)
	}
	log.Printf("Parsed table: %d rows x %d cols", t.Rows(), t.Cols())

	// ── Find mode ─────────────────────────────────────────────────────────
	if *find != "" {
		if r, c, ok := t.Find(table.New(*find)); ok {
			fmt.Fprintf(writer, "found %q at row %d, col %d\n", *find, r, c)
		} else {
			fmt.Fprintf(writer, "%q not found\n", *find)
		}
		return
	}

	// ── Total row ─────────────────────────────────────────────────────────
	if *total {
		sum := table.NewSlice()
		for i := 0; i < t.Rows(); i++ {
			row, _ := t.Row(i)
			if i == 0 {
				sum = row
				continue
			}
			next, err := sum.Add(row)
			if err != nil {
				fatalf("Total failed at row %d: %v", i, err)
			}
			sum = next
		}
		if t.Rows() > 0 {
			if err := t.PushRow(sum); err != nil {
				fatalf("Failed to append total row: %v", err)
			}
			log.Printf("Appended total row: %v", sum.Strings())
		}
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "json", "pretty":
		var out []byte
		if *format == "pretty" {
			out, err = json.MarshalIndent(t, "", "  ")
		} else {
			out, err = json.Marshal(t)
		}
		if err != nil {
			fatalf("Failed to marshal output: %v", err)
		}
		fmt.Fprintln(writer, string(out))
	default:
		if err := t.WriteCSV(writer); err != nil {
			fatalf("Failed to write CSV: %v", err)
		}
	}
	if *outFile != "" {
		log.Printf("Output written to %s", *outFile)
	}
}

// resolveFormat picks the input codec from the --in flag or the file
// extension, defaulting to CSV.
func resolveFormat(in, path string) string {
	if in != "" {
		return in
	}
	if filepath.Ext(path) == ".json" {
		return "json"
	}
	return "csv"
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
