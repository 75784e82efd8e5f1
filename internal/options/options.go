// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM or binary file"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.z64)"`
	Report string `flag:"report" usage:"write a YAML report grouping identical disassemblies"`
	Config string `flag:"config" usage:"config file with flag values"`
}

// Flags contains behavior options.
type Flags struct {
	Region  string `flag:"region" usage:"region to disassemble: bootcode, bootcode-header, raw (default: auto-detect)"`
	Base    string `flag:"base" usage:"address of the first disassembled byte (default: region start)"`
	Workers int    `flag:"workers" usage:"number of concurrent decode workers" default:"1"`
	Color   bool   `flag:"color" usage:"highlight unknown words and branches"`
	Verify  bool   `flag:"verify" usage:"verify the written listing reproduces the input words"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Quiet   bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags

	// BaseAddress is the parsed Base flag, only valid if HasBase is set.
	BaseAddress uint32
	HasBase     bool
}
