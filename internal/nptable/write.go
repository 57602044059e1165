package nptable

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"regexp"
)

const perLine = 4

var cIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// WriteCatalog prints the catalog as C pairs, four per line, each line
// annotated with the index range it covers. A blank line closes the block.
func WriteCatalog(w io.Writer, cat *Catalog) error {
	bw := bufio.NewWriter(w)
	writeCatalog(bw, cat, "")
	fmt.Fprintln(bw)
	return bw.Flush()
}

func writeCatalog(bw *bufio.Writer, cat *Catalog, indent string) {
	n := cat.Len()
	for i, p := range cat.points {
		if i%perLine == 0 {
			bw.WriteString(indent)
		}
		fmt.Fprintf(bw, "{%6d,%6d},", p.X, p.Y)
		if i%perLine == perLine-1 || i == n-1 {
			fmt.Fprintf(bw, " // %02X-%02X\n", i-i%perLine, i)
		}
	}
}

// WriteWords prints every entry as a 0x-prefixed 64-bit literal, four per line.
func WriteWords(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	writeWords(bw, entries, "")
	return bw.Flush()
}

func writeWords(bw *bufio.Writer, entries []Entry, indent string) {
	for i, e := range entries {
		if i%perLine == 0 {
			bw.WriteString(indent)
		}
		fmt.Fprintf(bw, "0x%016X,", e.Word())
		if i%perLine == perLine-1 || i == len(entries)-1 {
			bw.WriteByte('\n')
		}
	}
}

// WriteText prints the catalog block followed by the word block.
func WriteText(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	writeCatalog(bw, t.Catalog, "")
	fmt.Fprintln(bw)
	writeWords(bw, t.Entries, "")
	return bw.Flush()
}

// WriteHeader prints a C header declaring name_param and name_nodes.
func WriteHeader(w io.Writer, name string, t *Table) error {
	if !cIdentifier.MatchString(name) {
		return fmt.Errorf("table name %q is not a C identifier", name)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "static const int32_t %s_param[][2] =\n{\n", name)
	writeCatalog(bw, t.Catalog, "    ")
	fmt.Fprintf(bw, "};\n\nstatic const uint64_t %s_nodes[] =\n{\n", name)
	writeWords(bw, t.Entries, "    ")
	fmt.Fprintln(bw, "};")
	return bw.Flush()
}

// WriteBinary writes the words as consecutive little-endian uint64 values,
// the in-memory layout of the C table on little-endian targets.
func WriteBinary(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	var buf [8]byte
	for _, e := range entries {
		binary.LittleEndian.PutUint64(buf[:], e.Word())
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBinary reads a table written by WriteBinary.
func ReadBinary(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var buf [8]byte
	br := bufio.NewReader(r)
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read packed table: %w", err)
		}
		entries = append(entries, DecodeWord(binary.LittleEndian.Uint64(buf[:])))
	}
}
