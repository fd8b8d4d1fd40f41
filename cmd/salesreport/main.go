package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"salesreport/internal/catalog"
	"salesreport/internal/config"
	"salesreport/internal/pipeline"
	"salesreport/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath, "pipe-delimited sales data file")
		region := fs.String("region", "", "only include this region")
		minAmount := fs.String("min-amount", "", "minimum transaction amount")
		maxAmount := fs.String("max-amount", "", "maximum transaction amount")
		offline := fs.Bool("offline", false, "enrich from the local catalog cache, no network call")
		xlsxOut := fs.String("xlsx", "", "also export enriched rows to this xlsx path")
		_ = fs.Parse(os.Args[2:])

		cfg.InputPath = *input
		opts := pipeline.RunOptions{Offline: *offline, XLSXPath: *xlsxOut}
		opts.Filter.Region = strings.TrimSpace(*region)
		opts.Filter.MinAmount, err = parseAmountFlag(*minAmount)
		must(err)
		opts.Filter.MaxAmount, err = parseAmountFlag(*maxAmount)
		must(err)

		svc := pipeline.NewService(db, cfg, log)
		res, err := svc.RunWithOptions(context.Background(), opts)
		must(err)
		fmt.Printf("run done trace=%s valid=%d matched=%d report=%s\n",
			res.TraceID, res.Counts.Valid, res.Counts.Matched, res.ReportPath)
	case "catalog:sync":
		svc := catalog.NewSyncService(db, cfg)
		count, err := svc.Sync(context.Background())
		must(err)
		fmt.Printf("catalog sync complete: %d products\n", count)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath, "pipe-delimited sales data file")
		out := fs.String("out", "", "output xlsx path")
		offline := fs.Bool("offline", false, "enrich from the local catalog cache")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}

		cfg.InputPath = *input
		svc := pipeline.NewService(db, cfg, log)
		res, err := svc.RunWithOptions(context.Background(), pipeline.RunOptions{Offline: *offline, XLSXPath: *out})
		must(err)
		fmt.Printf("exported %d rows to %s\n", res.Counts.Valid, *out)
	default:
		usage()
		os.Exit(1)
	}
}

func parseAmountFlag(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	return &parsed, nil
}

func usage() {
	fmt.Println("usage: salesreport <command>")
	fmt.Println("commands:")
	fmt.Println("  run [--input=data/sales_data.txt] [--region=North] [--min-amount=500] [--max-amount=900000] [--offline] [--xlsx=out.xlsx]")
	fmt.Println("  catalog:sync")
	fmt.Println("  export:xlsx --out=./out/enriched.xlsx [--input=...] [--offline]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
