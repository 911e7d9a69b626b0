package ingestion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/answerit/core"
)

// ErrMalformedPairFile is returned when a pair file cannot be parsed.
var ErrMalformedPairFile = errors.New("malformed pair file")

// ParsePairs reads question/answer pairs from r in a line-oriented format:
//
//	Q: What is the capital of France?
//	A: Paris
//
//	Q: Who wrote Hamlet?
//	A: Shakespeare
//
// Lines starting with "#" are comments. A line that belongs to neither
// marker continues the preceding question or answer. sourceName is recorded
// as each pair's SourceFile, and a pair's SourceLine is the line its "Q:"
// marker appears on.
func ParsePairs(r io.Reader, sourceName string) ([]core.QAPair, error) {
	var (
		pairs    []core.QAPair
		current  *core.QAPair
		inAnswer bool
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if strings.TrimSpace(current.Answer) == "" {
			return fmt.Errorf("%w: %s:%d: question without an answer", ErrMalformedPairFile, sourceName, current.SourceLine)
		}
		current.Question = strings.TrimSpace(current.Question)
		current.Answer = strings.TrimSpace(current.Answer)
		pairs = append(pairs, *current)
		current = nil
		inAnswer = false
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "#"):
			continue

		case strings.HasPrefix(trimmed, "Q:"):
			if err := flush(); err != nil {
				return nil, err
			}
			current = &core.QAPair{
				Question:   strings.TrimSpace(strings.TrimPrefix(trimmed, "Q:")),
				SourceFile: sourceName,
				SourceLine: lineNo,
			}

		case strings.HasPrefix(trimmed, "A:"):
			if current == nil {
				return nil, fmt.Errorf("%w: %s:%d: answer without a question", ErrMalformedPairFile, sourceName, lineNo)
			}
			if inAnswer {
				return nil, fmt.Errorf("%w: %s:%d: duplicate answer marker", ErrMalformedPairFile, sourceName, lineNo)
			}
			current.Answer = strings.TrimSpace(strings.TrimPrefix(trimmed, "A:"))
			inAnswer = true

		case trimmed == "":
			continue

		default:
			// Continuation of the question or answer above.
			if current == nil {
				return nil, fmt.Errorf("%w: %s:%d: text outside a pair", ErrMalformedPairFile, sourceName, lineNo)
			}
			if inAnswer {
				current.Answer += " " + trimmed
			} else {
				current.Question += " " + trimmed
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// LoadPairsFile parses a pair file from disk.
func LoadPairsFile(path string) ([]core.QAPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParsePairs(f, path)
}
