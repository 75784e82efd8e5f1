package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/retrogolib/assert"
)

func TestWriter_Write(t *testing.T) {
	dis := r4300i.FromWords([]uint32{0x3C010000, 0x00000000, 0xF8000000})

	var buf bytes.Buffer
	w := New(&buf, Options{Base: 0x40})
	assert.NoError(t, w.Write(dis))

	expected := "[0x00000040][0x3C010000][LUI at, 0x0000]\n" +
		"[0x00000044][0x00000000][NOP ]\n" +
		"[0x00000048][0xF8000000][Unknown ]\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_Color(t *testing.T) {
	dis := r4300i.FromWords([]uint32{0xF8000000, 0x03E00008, 0x3C010000})

	var buf bytes.Buffer
	w := New(&buf, Options{Color: true})
	assert.NoError(t, w.Write(dis))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Contains(t, lines[0], "\x1b[31m")
	assert.Contains(t, lines[0], "[Unknown ]")
	assert.Contains(t, lines[1], "\x1b[36m")
	assert.Equal(t, "[0x00000008][0x3C010000][LUI at, 0x0000]", lines[2])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_Error(t *testing.T) {
	dis := r4300i.FromWords([]uint32{0})
	err := New(failingWriter{}, Options{}).Write(dis)
	assert.ErrorContains(t, err, "disk full")
}

func TestWriter_ColorError(t *testing.T) {
	dis := r4300i.FromWords([]uint32{0xF8000000})
	err := New(failingWriter{}, Options{Color: true}).Write(dis)
	assert.ErrorContains(t, err, "writing line for address 0x00000000")
	assert.ErrorContains(t, err, "disk full")
}
