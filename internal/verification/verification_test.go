package verification

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/r4300disasm/internal/writer"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeListing(t *testing.T, dis *r4300i.Disassembly, opts writer.Options) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.disasm")
	file, err := os.Create(path)
	assert.NoError(t, err)
	assert.NoError(t, writer.New(file, opts).Write(dis))
	assert.NoError(t, file.Close())
	return path
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	dis := r4300i.FromWords([]uint32{0x3C010000, 0x8C820000, 0x00000000, 0xF8000000})

	t.Run("plain listing", func(t *testing.T) {
		path := writeListing(t, dis, writer.Options{Base: 0x40})
		assert.NoError(t, VerifyOutput(logger, path, dis, 0x40))
	})

	t.Run("colored listing", func(t *testing.T) {
		path := writeListing(t, dis, writer.Options{Base: 0x40, Color: true})
		assert.NoError(t, VerifyOutput(logger, path, dis, 0x40))
	})

	t.Run("base mismatch", func(t *testing.T) {
		path := writeListing(t, dis, writer.Options{Base: 0})
		assert.ErrorContains(t, VerifyOutput(logger, path, dis, 0x40), "address mismatches")
	})

	t.Run("tampered word", func(t *testing.T) {
		path := writeListing(t, dis, writer.Options{})
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		tampered := strings.Replace(string(data), "[0x8C820000]", "[0x8C820004]", 1)
		assert.NoError(t, os.WriteFile(path, []byte(tampered), 0o600))

		assert.ErrorContains(t, VerifyOutput(logger, path, dis, 0), "1 word mismatches")
	})

	t.Run("truncated listing", func(t *testing.T) {
		path := writeListing(t, r4300i.FromWords(dis.Words[:2]), writer.Options{})
		assert.ErrorContains(t, VerifyOutput(logger, path, dis, 0), "mismatched word count")
	})

	t.Run("garbage line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.disasm")
		assert.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o600))
		assert.ErrorContains(t, VerifyOutput(logger, path, dis, 0), "parsing line 1")
	})

	t.Run("console output", func(t *testing.T) {
		assert.Error(t, VerifyOutput(logger, "", dis, 0))
	})
}
