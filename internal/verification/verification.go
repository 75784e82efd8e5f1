// Package verification verifies that a written listing recreates the input words.
package verification

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/retroenv/r4300disasm/internal/r4300i"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

var colorSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// VerifyOutput reads the listing file back and checks that its address and
// word columns match the disassembly that was written.
func VerifyOutput(logger *log.Logger, path string, dis *r4300i.Disassembly, base uint32) error {
	if path == "" {
		return errors.New("can not verify console output")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening listing '%s': %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var words []uint32
	var diffs uint64

	scanner := bufio.NewScanner(file)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		address, word, err := parseLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", lineNumber, err)
		}

		index := len(words)
		words = append(words, word)

		if expected := r4300i.Address(index, base); address != expected {
			diffs++
			if diffs <= maxLoggedMismatches {
				logger.Error("Address mismatch",
					log.Int("line", lineNumber),
					log.Hex("expected", expected),
					log.Hex("got", address))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading listing '%s': %w", path, err)
	}

	if err := checkWordsEqual(logger, dis.Words, words); err != nil {
		return err
	}
	if diffs > 0 {
		return fmt.Errorf("%d address mismatches", diffs)
	}
	return nil
}

// parseLine extracts the address and word columns of a listing line.
func parseLine(line string) (uint32, uint32, error) {
	line = colorSequence.ReplaceAllString(line, "")

	var address, word uint32
	if _, err := fmt.Sscanf(line, "[0x%x][0x%x]", &address, &word); err != nil {
		return 0, 0, fmt.Errorf("unexpected listing line '%s': %w", line, err)
	}
	return address, word, nil
}

func checkWordsEqual(logger *log.Logger, input, output []uint32) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched word count, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Word mismatch",
				log.Int("index", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d word mismatches", diffs)
}
