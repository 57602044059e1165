package labels

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/biometree/internal/config"
	"github.com/specialistvlad/biometree/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// labelVar is the variable through which code expressions see earlier names.
const labelVar = "label"

// Build evaluates the entries of model in order and freezes the result.
//
// A code may be shared by several names only when the later name's code
// expression refers to a name already holding that code, which is how
// aliases and renamed biomes are declared.
func Build(ctx context.Context, model *config.LabelModel) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	t := &Table{
		codes:     make(map[string]int, len(model.Entries)),
		canonical: make(map[int]string, len(model.Entries)),
	}
	var counter Counter
	known := make(map[string]cty.Value, len(model.Entries))

	for _, e := range model.Entries {
		where := e.DeclRange.String()
		if _, dup := t.codes[e.Name]; dup {
			return nil, &ConflictError{Name: e.Name, Where: where, Reason: "declared twice"}
		}

		var code int
		var refs []string
		switch {
		case e.Code != nil:
			refs = referencedLabels(e.Code)
			v, err := evalInt(e.Code, known)
			if err != nil {
				return nil, &ConflictError{Name: e.Name, Where: where, Reason: err.Error()}
			}
			code = v
		case e.Reset != nil:
			v, err := evalInt(e.Reset, nil)
			if err != nil {
				return nil, &ConflictError{Name: e.Name, Where: where, Reason: err.Error()}
			}
			code = counter.Next(&v)
		default:
			code = counter.Next(nil)
		}

		if code < 0 || code > MaxCode {
			return nil, &ConflictError{Name: e.Name, Where: where, Reason: fmt.Sprintf("code %d outside [0, %d]", code, MaxCode)}
		}
		if owner, taken := t.canonical[code]; taken {
			if !sharesCode(t, refs, code) {
				return nil, &ConflictError{Name: e.Name, Where: where, Reason: fmt.Sprintf("code %d already used by %q", code, owner)}
			}
		} else {
			t.canonical[code] = e.Name
		}

		t.codes[e.Name] = code
		t.order = append(t.order, e.Name)
		known[e.Name] = cty.NumberIntVal(int64(code))
	}

	logger.Debug("Label table built.", "names", len(t.order), "codes", len(t.canonical))
	return t, nil
}

// sharesCode reports whether one of the referenced names holds code.
func sharesCode(t *Table, refs []string, code int) bool {
	for _, ref := range refs {
		if c, ok := t.codes[ref]; ok && c == code {
			return true
		}
	}
	return false
}

// referencedLabels lists the names an expression reads as label.<name>.
func referencedLabels(expr hcl.Expression) []string {
	var out []string
	for _, traversal := range expr.Variables() {
		if traversal.RootName() != labelVar || len(traversal) < 2 {
			continue
		}
		if attr, ok := traversal[1].(hcl.TraverseAttr); ok {
			out = append(out, attr.Name)
		}
	}
	return out
}

// evalInt evaluates expr with the given names visible under `label`.
func evalInt(expr hcl.Expression, known map[string]cty.Value) (int, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{labelVar: cty.EmptyObjectVal},
	}
	if len(known) > 0 {
		evalCtx.Variables[labelVar] = cty.ObjectVal(known)
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("expression has no value")
	}
	var out int
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return 0, fmt.Errorf("expression is not an integer: %w", err)
	}
	return out, nil
}
