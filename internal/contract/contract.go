package contract

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"cuelang.org/go/cue/load"

	"github.com/roach88/rfn/internal/layout"
)

//go:embed schema.cue
var schemaSrc string

// Contract is the agreed layout of every representation that crosses a boundary.
type Contract struct {
	Word    int64
	Layouts map[string]layout.Descriptor
}

// Names returns the representation names in sorted order.
func (c *Contract) Names() []string {
	names := make([]string, 0, len(c.Layouts))
	for name := range c.Layouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type rawContract struct {
	Word    int64                        `json:"word"`
	Layouts map[string]layout.Descriptor `json:"layouts"`
}

// Parse compiles a contract from CUE source. filename is used in positions.
func Parse(src []byte, filename string) (*Contract, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueError(ErrCodeLoadFailed, err)
	}
	return fromValue(ctx, v)
}

// LoadFile reads and parses a single contract file.
func LoadFile(path string) (*Contract, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("reading contract: %v", err)}
	}
	return Parse(src, path)
}

// LoadDir loads the CUE package in dir as one contract. All files in the
// package are unified, so a contract may be split across files.
func LoadDir(dir string) (*Contract, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &Error{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("contract directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &Error{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &Error{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, cueError(ErrCodeLoadFailed, inst.Err)
	}

	ctx := cuecontext.New()
	v := ctx.BuildInstance(inst)
	if err := v.Err(); err != nil {
		return nil, cueError(ErrCodeLoadFailed, err)
	}
	return fromValue(ctx, v)
}

func fromValue(ctx *cue.Context, v cue.Value) (*Contract, error) {
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, cueError(ErrCodeLoadFailed, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Contract")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(ErrCodeSchemaInvalid, err)
	}

	var raw rawContract
	if err := unified.Decode(&raw); err != nil {
		return nil, cueError(ErrCodeSchemaInvalid, err)
	}

	c := &Contract{Word: raw.Word, Layouts: make(map[string]layout.Descriptor, len(raw.Layouts))}
	for name, d := range raw.Layouts {
		d.Name = name
		d.Word = raw.Word
		c.Layouts[name] = d
	}
	return c, nil
}

// Check compares local descriptors with the contract. Every layout the
// contract names must exist locally and match it field for field; local
// layouts the contract does not mention are ignored. The result joins one
// *Error per offending layout, or is nil.
func (c *Contract) Check(local []layout.Descriptor) error {
	byName := make(map[string]layout.Descriptor, len(local))
	for _, d := range local {
		byName[d.Name] = d
	}

	var errs []error
	for _, name := range c.Names() {
		want := c.Layouts[name]
		got, ok := byName[name]
		if !ok {
			errs = append(errs, &Error{
				Code:    ErrCodeMissingLayout,
				Layout:  name,
				Message: "representation is not built into this binary",
			})
			continue
		}
		if diffs := want.Compare(got); len(diffs) > 0 {
			errs = append(errs, &Error{
				Code:       ErrCodeLayoutMismatch,
				Layout:     name,
				Message:    fmt.Sprintf("%d difference(s) from contract", len(diffs)),
				Mismatches: diffs,
			})
		}
	}
	return errors.Join(errs...)
}

// Emit renders descriptors as a contract in CUE syntax. All descriptors must
// share one word size.
func Emit(descs []layout.Descriptor) ([]byte, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("emit contract: no layouts")
	}
	word := descs[0].Word

	layouts := make(map[string]any, len(descs))
	for _, d := range descs {
		if d.Word != word {
			return nil, fmt.Errorf("emit contract: %s has word size %d, want %d", d.Name, d.Word, word)
		}
		fields := make([]map[string]any, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = map[string]any{
				"name":   f.Name,
				"kind":   string(f.Kind),
				"offset": f.Offset,
				"size":   f.Size,
			}
		}
		layouts[d.Name] = map[string]any{
			"discipline": d.Discipline,
			"ownership":  d.Ownership,
			"size":       d.Size,
			"align":      d.Align,
			"fields":     fields,
		}
	}

	ctx := cuecontext.New()
	v := ctx.Encode(map[string]any{"word": word, "layouts": layouts})
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("emit contract: %w", err)
	}
	node := v.Syntax(cue.Concrete(true))
	if lit, ok := node.(*ast.StructLit); ok {
		node = &ast.File{Decls: lit.Elts}
	}
	out, err := format.Node(node)
	if err != nil {
		return nil, fmt.Errorf("emit contract: %w", err)
	}
	return out, nil
}
