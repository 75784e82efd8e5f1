// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/r4300disasm/internal/config"
	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/pipeline"
	"github.com/retroenv/r4300disasm/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// OutputExtension is appended to input filenames in batch mode.
const OutputExtension = ".disasm"

// FileResult is the outcome of processing a single input file.
type FileResult struct {
	Input  string
	Output string // empty for console output
	Result *pipeline.Result
	Err    error
}

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) (*pipeline.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	writer, err := createWriter(opts)
	if err != nil {
		return nil, fmt.Errorf("creating writer: %w", err)
	}

	p := pipeline.New(logger)
	result, err := p.Execute(ctx, opts, writer)

	if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
		}
	}
	if err != nil {
		return nil, err
	}

	if opts.Verify {
		if err := verification.VerifyOutput(logger, opts.Output, result.Disassembly, result.Input.Base); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful", log.String("file", opts.Output))
	}

	return result, nil
}

// ProcessFiles processes all files concurrently, limited to the configured
// number of workers. Every file gets its own output file unless a single
// file is processed outside of batch mode. Failing files do not stop the
// processing of the others, the returned results keep the order of files.
// An error is only returned if the context gets cancelled.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program, files []string) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	multiple := len(files) > 1 || opts.Batch != ""

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(config.Workers(opts))

	for i, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		if multiple {
			fileOpts.Output = GenerateOutputFilename(file)
			// concurrency is spent on files, not on the words of a file
			fileOpts.Workers = 1
		}

		group.Go(func() error {
			result, err := ProcessFile(ctx, logger, fileOpts)
			results[i] = FileResult{
				Input:  file,
				Output: fileOpts.Output,
				Result: result,
				Err:    err,
			}

			if errors.Is(err, context.Canceled) {
				return err
			}
			if err != nil {
				logger.Error("Disassembling failed", log.String("file", file), log.Err(err))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, fmt.Errorf("processing files: %w", err)
	}
	return results, nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
	}
	return matches, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	return inputFile + OutputExtension
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("r4300disasm - N64 R4300i disassembler",
		log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
