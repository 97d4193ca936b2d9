// Command qrbatch generates the codes for one order offline and writes the
// export workbook, without a running service or database.
//
// Usage:
//
//	qrbatch -order order.json [-out batch.xlsx] [-base-url https://scan.example.com]
//
// The order file holds the same JSON body as POST /api/batches/preview.
// Missing buffer_percent and units_per_case come from DEFAULT_BUFFER_PERCENT
// and DEFAULT_UNITS_PER_CASE.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/guttosm/trace-service/config"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/export"
	"github.com/guttosm/trace-service/internal/logger"
	"github.com/guttosm/trace-service/internal/service"
)

type options struct {
	orderPath string
	outPath   string
	baseURL   string
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	opts, err := parseFlags(os.Args[1:], cfg.Batch.TrackingBaseURL)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg.Batch, opts, os.Stdin, os.Stdout); err != nil {
		log := logger.Component("qrbatch")
		log.Error().Err(err).Msg("Batch generation failed")
		os.Exit(1)
	}
}

func parseFlags(args []string, defaultBaseURL string) (options, error) {
	fs := flag.NewFlagSet("qrbatch", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.orderPath, "order", "", `order JSON file, or "-" for stdin`)
	fs.StringVar(&opts.outPath, "out", "", "output .xlsx path (default: qr-codes-<order_number>.xlsx)")
	fs.StringVar(&opts.baseURL, "base-url", defaultBaseURL, "tracking base URL printed on labels")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.orderPath == "" {
		return opts, errors.New("-order is required")
	}
	return opts, nil
}

func readOrder(path string, stdin io.Reader) (dto.BatchRequest, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return dto.BatchRequest{}, err
		}
		defer f.Close()
		r = f
	}

	var req dto.BatchRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return dto.BatchRequest{}, fmt.Errorf("decode order: %w", err)
	}
	if err := req.Validate(); err != nil {
		return dto.BatchRequest{}, err
	}
	return req, nil
}

func run(ctx context.Context, cfg config.BatchConfig, opts options, stdin io.Reader, stdout io.Writer) error {
	req, err := readOrder(opts.orderPath, stdin)
	if err != nil {
		return err
	}

	policy := model.RoundingPolicy(cfg.RoundingPolicy)
	profiles := service.NewPackagingProfileService(nil, model.PackagingProfile{
		BufferPercent: cfg.DefaultBufferPercent,
		UnitsPerCase:  cfg.DefaultUnitsPerCase,
	})
	exporter := export.New(opts.baseURL)
	batches := service.NewBatchService(nil, profiles, exporter, service.WithDefaultPolicy(policy))

	result, err := batches.Preview(ctx, req)
	if err != nil {
		return err
	}
	if result.TotalBaseUnits == 0 {
		return fmt.Errorf("%w: %s", service.ErrEmptyBatch, result.OrderNumber)
	}

	outPath := opts.outPath
	if outPath == "" {
		outPath = export.FileName(result.OrderNumber)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := exporter.WriteXLSX(out, result); err != nil {
		_ = out.Close()
		return fmt.Errorf("write export: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s: %d master codes, %d individual codes (%d base units, discrepancy %d) -> %s\n",
		result.OrderNumber, result.TotalMasterCodes, result.EmittedCodes(), result.TotalBaseUnits, result.Discrepancy(), outPath)
	return err
}
