package labels

import "sort"

// MaxCode is the largest code a payload byte can hold.
const MaxCode = 0xFF

// Table is an immutable name to code mapping.
type Table struct {
	codes map[string]int
	// canonical holds the first name declared for every code.
	canonical map[int]string
	order     []string
}

// Code returns the code of name.
func (t *Table) Code(name string) (int, error) {
	code, ok := t.codes[name]
	if !ok {
		return 0, &UnknownLabelError{Name: name}
	}
	return code, nil
}

// Name returns the first name declared with code.
func (t *Table) Name(code int) (string, bool) {
	name, ok := t.canonical[code]
	return name, ok
}

// Aliases returns every name sharing code, in declaration order.
func (t *Table) Aliases(code int) []string {
	var out []string
	for _, name := range t.order {
		if t.codes[name] == code {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of names, aliases included.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns all names in declaration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Codes returns the distinct codes in ascending order.
func (t *Table) Codes() []int {
	out := make([]int, 0, len(t.canonical))
	for code := range t.canonical {
		out = append(out, code)
	}
	sort.Ints(out)
	return out
}
