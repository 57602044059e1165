package nptable

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/biometree/internal/ctxlog"
)

// noLabel marks a node without biome in the C literal.
const noLabel = "none"

var (
	idComment  = regexp.MustCompile(`/\*([0-9]*)\*/`)
	identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Row is one node of the table before deduplication.
type Row struct {
	Line   int
	Points [PointsPerRow]Point
	// Label is the biome of a leaf row; empty for inner rows.
	Label string
	// Value is the first child id of an inner row.
	Value int
}

// HasLabel reports whether the row is a labelled leaf.
func (r Row) HasLabel() bool {
	return r.Label != ""
}

// ParseRows reads the C node literal produced by the tree converter.
//
// Comments and braces are dropped and every row is cut at its commas. A row
// without intervals (the root) is read as six zero intervals. A placeholder
// row, `/*id*/{{},{},none},`, refers to itself through its id. Blank lines
// are skipped.
func ParseRows(ctx context.Context, r io.Reader) ([]Row, error) {
	logger := ctxlog.FromContext(ctx)

	var rows []Row
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		row, ok, err := parseRow(lineNo, text)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	logger.Debug("Table rows parsed.", "rows", len(rows), "lines", lineNo)
	return rows, nil
}

// scrub reduces a literal line to its comma-separated fields. emptyRanges
// reports that the line had no intervals and zeros were filled in.
func scrub(text string) (fields []string, emptyRanges bool) {
	s := idComment.ReplaceAllString(text, "")
	s = strings.NewReplacer("{", "", "}", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	emptyRanges = strings.HasPrefix(s, ",")

	if emptyRanges {
		for i := 0; i < 2*PointsPerRow; i++ {
			fields = append(fields, "0")
		}
	}
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields, emptyRanges
}

// rowID returns the id written in the leading comment of a literal line.
func rowID(text string) (int, bool) {
	m := idComment.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	return id, err == nil
}

func parseRow(lineNo int, text string) (Row, bool, error) {
	fields, emptyRanges := scrub(text)
	if len(fields) == 0 {
		return Row{}, false, nil
	}
	malformed := func(reason string) (Row, bool, error) {
		return Row{}, false, &MalformedRowError{Line: lineNo, Text: text, Reason: reason}
	}

	const coords = 2 * PointsPerRow
	if len(fields) <= coords {
		return malformed(fmt.Sprintf("expected %d coordinates and a payload, found %d fields", coords, len(fields)))
	}

	row := Row{Line: lineNo}
	for i := 0; i < PointsPerRow; i++ {
		x, err := strconv.Atoi(fields[2*i])
		if err != nil {
			return malformed(fmt.Sprintf("coordinate %d is not an integer", 2*i))
		}
		y, err := strconv.Atoi(fields[2*i+1])
		if err != nil {
			return malformed(fmt.Sprintf("coordinate %d is not an integer", 2*i+1))
		}
		row.Points[i] = Point{X: x, Y: y}
	}

	rest := fields[coords:]
	if v, err := strconv.Atoi(rest[0]); err == nil {
		row.Value = v
		return row, true, nil
	}
	if len(rest) != 1 || !identifier.MatchString(rest[0]) {
		return malformed("payload is neither a child id nor a single label")
	}
	if rest[0] == noLabel {
		if !emptyRanges {
			return malformed("leaf has no label")
		}
		id, ok := rowID(text)
		if !ok {
			return malformed("placeholder has no id comment")
		}
		row.Value = id
		return row, true, nil
	}
	row.Label = rest[0]
	return row, true, nil
}
