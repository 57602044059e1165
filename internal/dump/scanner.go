package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/biometree/internal/biometree"
	"github.com/specialistvlad/biometree/internal/noderange"
)

const (
	// RangesPerNode is the number of descriptors listed for every node.
	RangesPerNode = 7

	nodeMarker  = " = {MultiNoiseUtil"
	biomeMarker = "worldgen/biome / "
)

// Record is one node description pulled from the transcript.
type Record struct {
	Line   int
	Path   []int
	Ranges []noderange.Range
	Label  string
}

// Scanner splits a transcript into node records.
type Scanner struct {
	lines   *bufio.Scanner
	lineNo  int
	pending *string
	path    [biometree.MaxDepth - 1]int
	rec     Record
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Scanner{lines: s}
}

// Next advances to the next node record. It returns false at the end of the
// input or on the first error, which is then available from Err.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	for {
		line, ok := s.readLine()
		if !ok {
			return false
		}
		lineNo := s.lineNo

		depth, slot, tokens, relevant, err := splitNodeLine(line)
		if err != nil {
			s.err = &LineError{Line: lineNo, Text: line, Err: err}
			return false
		}
		if !relevant {
			continue
		}
		if depth >= len(s.path) {
			s.err = &LineError{Line: lineNo, Text: line, Err: fmt.Errorf("nesting depth %d exceeds %d", depth, len(s.path)-1)}
			return false
		}

		ranges, err := noderange.ParseList(tokens)
		if err != nil {
			s.err = &LineError{Line: lineNo, Text: line, Err: err}
			return false
		}

		s.path[depth] = slot
		s.rec = Record{
			Line:   lineNo,
			Path:   append([]int(nil), s.path[:depth+1]...),
			Ranges: ranges,
		}

		if next, ok := s.peekLine(); ok {
			s.rec.Label = biomeName(next)
		}
		return true
	}
}

// Record returns the record produced by the last successful Next.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error met while scanning.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.lines.Err()
}

func (s *Scanner) readLine() (string, bool) {
	if s.pending != nil {
		line := *s.pending
		s.pending = nil
		s.lineNo++
		return line, true
	}
	if !s.lines.Scan() {
		return "", false
	}
	s.lineNo++
	return s.lines.Text(), true
}

func (s *Scanner) peekLine() (string, bool) {
	if s.pending != nil {
		return *s.pending, true
	}
	if !s.lines.Scan() {
		return "", false
	}
	line := s.lines.Text()
	s.pending = &line
	return line, true
}

// splitNodeLine recognises a node line and cuts it into its parts. Lines
// that do not describe a node report relevant == false.
func splitNodeLine(line string) (depth, slot int, tokens []string, relevant bool, err error) {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent == 0 {
		return 0, 0, nil, false, nil
	}
	rest := line[indent:]

	digits := len(rest) - len(strings.TrimLeft(rest, "0123456789"))
	if digits == 0 || !strings.HasPrefix(rest[digits:], nodeMarker) {
		return 0, 0, nil, false, nil
	}
	slot, err = strconv.Atoi(rest[:digits])
	if err != nil {
		return 0, 0, nil, true, fmt.Errorf("bad slot index: %w", err)
	}

	rest = rest[digits+len(nodeMarker):]
	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return 0, 0, nil, true, errors.New("missing parameter list")
	}
	rest = rest[open+1:]

	tokens = make([]string, 0, RangesPerNode)
	for i := 0; i < RangesPerNode; i++ {
		if i > 0 {
			if !strings.HasPrefix(rest, ", ") {
				return 0, 0, nil, true, fmt.Errorf("expected %d range descriptors, found %d", RangesPerNode, i)
			}
			rest = rest[2:]
		}
		n := len(rest) - len(strings.TrimLeft(rest, "0123456789-[]"))
		if n == 0 {
			return 0, 0, nil, true, fmt.Errorf("empty range descriptor at position %d", i)
		}
		tokens = append(tokens, rest[:n])
		rest = rest[n:]
	}

	return (indent - 1) / 2, slot, tokens, true, nil
}

// biomeName extracts the biome name from a resource key line, or returns ""
// when the line does not hold one.
func biomeName(line string) string {
	i := strings.Index(line, biomeMarker)
	if i < 0 {
		return ""
	}
	key := line[i+len(biomeMarker):]
	colon := strings.IndexByte(key, ':')
	if colon <= 0 {
		return ""
	}
	name := key[colon+1:]
	n := len(name) - len(strings.TrimLeft(name, "abcdefghijklmnopqrstuvwxyz_"))
	return name[:n]
}
