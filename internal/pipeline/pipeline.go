// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/r4300disasm/internal/config"
	"github.com/retroenv/r4300disasm/internal/detector"
	"github.com/retroenv/r4300disasm/internal/loader"
	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/r4300disasm/internal/rom"
	"github.com/retroenv/r4300disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Result of a pipeline run.
type Result struct {
	Input       *loader.Input
	Disassembly *r4300i.Disassembly
}

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline for the input file of the
// options and writes the listing to w.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*Result, error) {
	region := p.detector.Detect(opts)

	input, err := p.loader.Load(opts, region)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	return p.ExecuteWithInput(ctx, input, opts, w)
}

// ExecuteWithInput runs the disassembly pipeline with an already loaded input.
func (p *Pipeline) ExecuteWithInput(ctx context.Context, input *loader.Input, opts options.Program,
	w io.Writer) (*Result, error) {

	p.printInfo(opts, input)
	if input.Header != nil && input.Order == rom.OrderUnknown {
		p.logger.Warn("Unknown cartridge byte order, reading image as big-endian",
			log.String("file", input.Name),
			log.Hex("first_word", input.Header.PIRegisters))
	}

	dis, err := p.decode(ctx, input, config.Workers(opts))
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	listing := writer.New(w, writer.Options{
		Base:  input.Base,
		Color: opts.Color,
	})
	if err := listing.Write(dis); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	p.logSummary(dis)

	return &Result{
		Input:       input,
		Disassembly: dis,
	}, nil
}

func (p *Pipeline) decode(ctx context.Context, input *loader.Input, workers int) (*r4300i.Disassembly, error) {
	if rest := len(input.Data) % r4300i.WordSize; rest != 0 {
		p.logger.Warn("Ignoring trailing partial word",
			log.String("file", input.Name),
			log.Int("bytes", rest))
	}

	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return r4300i.FromWords(input.Words), nil
	}

	dis, err := r4300i.FromWordsParallel(ctx, input.Words, workers)
	if err != nil {
		return nil, fmt.Errorf("decoding with %d workers: %w", workers, err)
	}
	return dis, nil
}

// printInfo prints information about the input being processed.
func (p *Pipeline) printInfo(opts options.Program, input *loader.Input) {
	if opts.Quiet {
		return
	}

	if input.Header == nil {
		p.logger.Info("Processing N64 input",
			log.String("file", input.Name),
			log.String("region", input.Region.String()),
			log.Hex("base", input.Base),
		)
		return
	}

	p.logger.Info("Processing N64 cartridge",
		log.String("file", input.Name),
		log.String("name", input.Header.Name()),
		log.String("byte_order", input.Order.String()),
		log.String("region", input.Region.String()),
		log.Hex("base", input.Base),
		log.Hex("entry", input.Header.EntryPC),
	)
}

func (p *Pipeline) logSummary(dis *r4300i.Disassembly) {
	counts := dis.Counts()
	p.logger.Debug("Disassembly finished",
		log.Int("words", counts.Words),
		log.Int("unknown", counts.Unknown),
		log.Int("branches", counts.Branches),
		log.Int("likely", counts.Likely),
		log.Int("traps", counts.Traps),
		log.Int("loads", counts.Loads),
		log.Int("stores", counts.Stores),
		log.Int("coprocessor", counts.Coprocessor))
}
