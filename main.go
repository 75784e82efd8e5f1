// Package main implements the main entry point for an N64 R4300i disassembler
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/r4300disasm/internal/cli"
	"github.com/retroenv/r4300disasm/internal/config"
	"github.com/retroenv/r4300disasm/internal/fileprocessor"
	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/report"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	files, err := fileprocessor.GetFilesToProcess(opts)
	if err != nil {
		return fmt.Errorf("getting files to process: %w", err)
	}

	results, err := fileprocessor.ProcessFiles(ctx, logger, opts, files)
	if err != nil {
		return err
	}

	var entries []report.Entry
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		entries = append(entries, report.Entry{
			Name:        res.Input,
			Header:      res.Result.Input.Header,
			Disassembly: res.Result.Disassembly,
		})
	}

	if opts.Report != "" {
		if err := writeReport(opts.Report, entries); err != nil {
			return err
		}
		logger.Info("Report written", log.String("file", opts.Report))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func writeReport(path string, entries []report.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file %s: %w", path, err)
	}

	if err := report.Write(file, report.GroupEntries(entries)); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report file %s: %w", path, err)
	}
	return nil
}
