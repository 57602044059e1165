package config

import "github.com/hashicorp/hcl/v2"

// LabelModel is the unified representation of one or more label documents.
type LabelModel struct {
	Sources []string
	Entries []*LabelEntry
}

// LabelEntry declares one biome name. At most one of Code and Reset is set:
//   - Code: the name gets the value of the expression and the running
//     counter is untouched. The expression may refer to names declared
//     earlier as `label.<name>`;
//   - Reset: the running counter restarts at the (constant) value and the
//     name takes it;
//   - neither: the name takes the next counter value.
type LabelEntry struct {
	Name  string
	Code  hcl.Expression
	Reset hcl.Expression
	// DeclRange is where the entry was declared, for diagnostics.
	DeclRange hcl.Range
}

// IsAuto reports whether the entry draws from the running counter.
func (e *LabelEntry) IsAuto() bool {
	return e.Code == nil
}
