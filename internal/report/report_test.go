package report

import (
	"bytes"
	"testing"

	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/r4300disasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"gopkg.in/yaml.v3"
)

func testEntries() []Entry {
	header := rom.Header{CRC1: 0x12345678}
	copy(header.ImageName[:], "CONKER BFD")

	return []Entry{
		{Name: "a.z64", Header: &header, Disassembly: r4300i.FromWords([]uint32{0x3C010000, 0xF8000000})},
		{Name: "b.z64", Disassembly: r4300i.FromWords([]uint32{0x8C820000})},
		{Name: "c.z64", Disassembly: r4300i.FromBytes([]byte{0x3c, 0x01, 0x00, 0x00, 0xf8, 0x00, 0x00, 0x00})},
	}
}

func TestGroupEntries(t *testing.T) {
	groups := GroupEntries(testEntries())

	assert.Equal(t, 2, len(groups))
	assert.Equal(t, 2, len(groups[0].Entries))
	assert.Equal(t, "a.z64", groups[0].Entries[0].Name)
	assert.Equal(t, "c.z64", groups[0].Entries[1].Name)
	assert.Equal(t, 1, len(groups[1].Entries))
	assert.Equal(t, "b.z64", groups[1].Entries[0].Name)

	assert.Equal(t, 0, len(GroupEntries(nil)))
}

func TestNew(t *testing.T) {
	rep := New(GroupEntries(testEntries()))

	assert.Equal(t, 3, rep.Inputs)
	assert.Equal(t, 2, len(rep.Groups))
	assert.Equal(t, 2, rep.Groups[0].Count)
	assert.Equal(t, 2, rep.Groups[0].Words)
	assert.Equal(t, 1, rep.Groups[0].Unknown)
	assert.Equal(t, 1, rep.Groups[1].Loads)
	assert.NotNil(t, rep.Groups[0].Files[0].Header)
	assert.Equal(t, "CONKER BFD", rep.Groups[0].Files[0].Header.Name)
	assert.Nil(t, rep.Groups[0].Files[1].Header)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, GroupEntries(testEntries())))

	var decoded Report
	assert.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, New(GroupEntries(testEntries())), decoded)
	assert.Contains(t, buf.String(), "crc1: \"0x12345678\"")
	assert.Contains(t, buf.String(), "loads: 1")
}
