// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/peterbourgon/ff/v3"
	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/rom"
)

// EnvVarPrefix is the prefix of environment variables that set flag values,
// for example R4300DISASM_REGION=raw.
const EnvVarPrefix = "R4300DISASM"

// ParseFlags parses the command line arguments, without the program name,
// and returns the program options. Flag values can also be set by
// environment variables and a config file passed by -config.
func ParseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("r4300disasm", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options.Program
	readOptionFlags(flags, &opts)

	err := ff.Parse(flags, args,
		ff.WithEnvVarPrefix(EnvVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if opts.Input == "" && len(rest) > 0 {
		opts.Input = rest[0]
		rest = rest[1:]
	}
	if opts.Input == "" && opts.Batch == "" {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(rest); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "missing file to disassemble"
	}
	return e.msg
}

// ShowUsage prints the usage and flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: r4300disasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that no flags follow the file to disassemble.
func validateArgs(rest []string) error {
	for _, arg := range rest {
		if len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	if len(rest) > 0 {
		return &UsageError{
			msg: fmt.Sprintf("unexpected arguments after file to disassemble: %v", rest),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Region != "" {
		region, err := rom.RegionFromString(opts.Region)
		if err != nil {
			return fmt.Errorf("%w. Valid options: %v", err, rom.Regions())
		}
		opts.Region = region.String()
	}

	if opts.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", opts.Workers)
	}

	if opts.Base != "" {
		base, err := strconv.ParseUint(opts.Base, 0, 32)
		if err != nil {
			return fmt.Errorf("parsing base address '%s': %w", opts.Base, err)
		}
		if base%4 != 0 {
			return fmt.Errorf("base address 0x%X is not word aligned", base)
		}
		opts.BaseAddress = uint32(base)
		opts.HasBase = true
	}

	if opts.Verify && opts.Output == "" && opts.Batch == "" {
		return errors.New("can not verify console output, pass an output file using -o")
	}

	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM or binary file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically name the listing files, for example *.z64")
	flags.StringVar(&opts.Report, "report", "", "name of a YAML report file grouping inputs with identical disassembly")
	flags.StringVar(&opts.Config, "config", "", "config file with one flag value per line")
	flags.StringVar(&opts.Region, "region", "", "region to disassemble (bootcode/bootcode-header/raw) - if not auto-detected from file extension")
	flags.StringVar(&opts.Base, "base", "", "address of the first disassembled byte, defaults to the region start")
	flags.IntVar(&opts.Workers, "workers", 1, "number of concurrent decode workers, 0 uses all CPUs")
	flags.BoolVar(&opts.Color, "color", false, "highlight unknown words and branches in the listing")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the written listing reproduces the input words")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
