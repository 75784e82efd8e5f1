// Package report groups inputs with identical disassemblies, for example
// cartridges sharing the same IPL3 boot code variant.
package report

import (
	"fmt"
	"io"

	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/r4300disasm/internal/rom"
	"gopkg.in/yaml.v3"
)

// Entry is a single processed input.
type Entry struct {
	Name        string
	Header      *rom.Header
	Disassembly *r4300i.Disassembly
}

// Group contains all inputs that decoded to the same words.
type Group struct {
	Entries []Entry
}

// Report is the serialized form of all groups.
type Report struct {
	Inputs int           `yaml:"inputs"`
	Groups []GroupReport `yaml:"groups"`
}

// GroupReport is the serialized form of a single group.
type GroupReport struct {
	Count         int `yaml:"count"`
	r4300i.Counts `yaml:",inline"`
	Files         []FileReport `yaml:"files"`
}

// FileReport is the serialized form of a single input of a group.
type FileReport struct {
	Name   string       `yaml:"name"`
	Header *rom.Summary `yaml:"header,omitempty"`
}

// GroupEntries groups entries with equal disassemblies. Groups and the
// entries in them keep the order in which they were first seen.
func GroupEntries(entries []Entry) []Group {
	var groups []Group

	for _, entry := range entries {
		found := false
		for i := range groups {
			if groups[i].Entries[0].Disassembly.Equal(entry.Disassembly) {
				groups[i].Entries = append(groups[i].Entries, entry)
				found = true
				break
			}
		}

		if !found {
			groups = append(groups, Group{Entries: []Entry{entry}})
		}
	}

	return groups
}

// New creates the serializable report for the groups.
func New(groups []Group) Report {
	rep := Report{
		Groups: make([]GroupReport, 0, len(groups)),
	}

	for _, group := range groups {
		gr := GroupReport{
			Count:  len(group.Entries),
			Counts: group.Entries[0].Disassembly.Counts(),
		}

		for _, entry := range group.Entries {
			file := FileReport{Name: entry.Name}
			if entry.Header != nil {
				summary := entry.Header.Summary()
				file.Header = &summary
			}
			gr.Files = append(gr.Files, file)
		}

		rep.Inputs += gr.Count
		rep.Groups = append(rep.Groups, gr)
	}

	return rep
}

// Write writes the report as YAML.
func Write(w io.Writer, groups []Group) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(New(groups)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing report encoder: %w", err)
	}
	return nil
}
