package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/r4300disasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecute_Raw(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	file := createTempFile(t, "pif.bin", []byte{
		0x3c, 0x01, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xf8, 0x00, 0x00, 0x00,
	})

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), options.Program{
		Parameters: options.Parameters{Input: file},
		Flags:      options.Flags{Workers: 1},
	}, &buf)
	assert.NoError(t, err)

	expected := "[0x00000000][0x3C010000][LUI at, 0x0000]\n" +
		"[0x00000004][0x00000000][NOP ]\n" +
		"[0x00000008][0xF8000000][Unknown ]\n"
	assert.Equal(t, expected, buf.String())

	assert.Equal(t, rom.RegionRaw, result.Input.Region)
	assert.Nil(t, result.Input.Header)
	assert.Equal(t, 3, result.Disassembly.Len())
}

func TestExecute_Cartridge(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	header := rom.Header{PIRegisters: 0x80371240, EntryPC: 0x80000400}
	copy(header.ImageName[:], "TEST")
	data := make([]byte, rom.BootCodeEnd)
	copy(data, header.Bytes())
	copy(data[rom.HeaderSize:], []byte{0x3c, 0x01, 0x00, 0x00})

	file := createTempFile(t, "game.z64", data)

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), options.Program{
		Parameters: options.Parameters{Input: file},
		Flags:      options.Flags{Workers: 4},
	}, &buf)
	assert.NoError(t, err)

	assert.Equal(t, rom.RegionBootCode, result.Input.Region)
	assert.NotNil(t, result.Input.Header)
	assert.Equal(t, "TEST", result.Input.Header.Name())
	assert.Equal(t, rom.BootCodeWords, result.Disassembly.Len())
	assert.True(t, r4300i.FromBytes(data[rom.HeaderSize:]).Equal(result.Disassembly))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, rom.BootCodeWords, len(lines))
	assert.Equal(t, "[0x00000040][0x3C010000][LUI at, 0x0000]", lines[0])
	assert.Equal(t, "[0x00000FFC][0x00000000][NOP ]", lines[len(lines)-1])
}

func TestExecute_BaseOverride(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	file := createTempFile(t, "code.bin", []byte{0x00, 0x00, 0x00, 0x00})

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), options.Program{
		Parameters:  options.Parameters{Input: file},
		Flags:       options.Flags{Workers: 1, Quiet: true},
		BaseAddress: 0xA4000040,
		HasBase:     true,
	}, &buf)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xA4000040), result.Input.Base)
	assert.Equal(t, "[0xA4000040][0x00000000][NOP ]\n", buf.String())
}

func TestExecute_UnknownByteOrder(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	data := make([]byte, rom.BootCodeEnd)
	copy(data[rom.HeaderSize:], []byte{0x3c, 0x01, 0x00, 0x00})
	file := createTempFile(t, "homebrew.z64", data)

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), options.Program{
		Parameters: options.Parameters{Input: file},
		Flags:      options.Flags{Workers: 1},
	}, &buf)
	assert.NoError(t, err)
	assert.Equal(t, rom.OrderUnknown, result.Input.Order)
	assert.Equal(t, rom.BootCodeWords, result.Disassembly.Len())
	assert.True(t, strings.HasPrefix(buf.String(), "[0x00000040][0x3C010000][LUI at, 0x0000]\n"))
}

func TestExecute_Errors(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tests := []struct {
		name       string
		file       string
		data       []byte
		errContain string
	}{
		{
			name:       "missing file",
			file:       "",
			errContain: "loading input",
		},
		{
			name:       "short cartridge",
			file:       "short.z64",
			data:       []byte{0x80, 0x37, 0x12, 0x40},
			errContain: "data too short for cartridge header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := filepath.Join(t.TempDir(), "missing.bin")
			if tt.file != "" {
				input = createTempFile(t, tt.file, tt.data)
			}

			var buf bytes.Buffer
			_, err := p.Execute(context.Background(), options.Program{
				Parameters: options.Parameters{Input: input},
				Flags:      options.Flags{Workers: 1},
			}, &buf)
			assert.ErrorContains(t, err, tt.errContain)
			assert.Equal(t, "", buf.String())
		})
	}
}

func TestExecute_Cancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	file := createTempFile(t, "code.bin", make([]byte, 64))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		var buf bytes.Buffer
		_, err := p.Execute(ctx, options.Program{
			Parameters: options.Parameters{Input: file},
			Flags:      options.Flags{Workers: workers},
		}, &buf)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, "", buf.String())
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
