package layout

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Word is the size in bytes of one machine word on this platform.
const Word = int64(unsafe.Sizeof(uintptr(0)))

// Kind classifies what a field holds.
type Kind string

const (
	// KindCode is a function pointer (a dispatch-table entry).
	KindCode Kind = "code"

	// KindData is a pointer to borrowed state.
	KindData Kind = "data"

	// KindHandle is an integer handle to owned state.
	KindHandle Kind = "handle"

	// KindOther is anything else. Boundary-safe layouts never contain it.
	KindOther Kind = "other"
)

// Field describes one field of a representation.
type Field struct {
	Name   string `json:"name" yaml:"name"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Offset int64  `json:"offset" yaml:"offset"`
	Size   int64  `json:"size" yaml:"size"`
}

// Descriptor is the layout declaration of one representation type.
type Descriptor struct {
	Name       string  `json:"name" yaml:"name"`
	Discipline string  `json:"discipline" yaml:"discipline"`
	Ownership  string  `json:"ownership" yaml:"ownership"`
	Word       int64   `json:"word" yaml:"word"`
	Size       int64   `json:"size" yaml:"size"`
	Align      int64   `json:"align" yaml:"align"`
	Fields     []Field `json:"fields" yaml:"fields"`
}

// Certifiable is implemented by representations whose field order, size and
// alignment do not depend on the wrapped callable or on type parameters.
type Certifiable interface {
	StableLayout() Descriptor
}

// Describe derives the descriptor of v's struct type.
// Type arguments are dropped from the name: BoxFn[int,string] describes as BoxFn.
func Describe(v any, discipline, ownership string) Descriptor {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("layout: cannot describe non-struct type %v", t))
	}

	d := Descriptor{
		Name:       baseName(t.Name()),
		Discipline: discipline,
		Ownership:  ownership,
		Word:       Word,
		Size:       int64(t.Size()),
		Align:      int64(t.Align()),
		Fields:     make([]Field, 0, t.NumField()),
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		d.Fields = append(d.Fields, Field{
			Name:   f.Name,
			Kind:   kindOf(f.Type),
			Offset: int64(f.Offset),
			Size:   int64(f.Type.Size()),
		})
	}
	return d
}

func baseName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

func kindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Func:
		return KindCode
	case reflect.UnsafePointer, reflect.Pointer:
		return KindData
	case reflect.Uintptr:
		return KindHandle
	default:
		return KindOther
	}
}

// WordAligned reports whether every field is one word wide and starts on a
// word boundary, and the struct is exactly its fields.
func (d Descriptor) WordAligned() bool {
	if d.Size != int64(len(d.Fields))*d.Word || d.Align != d.Word {
		return false
	}
	for i, f := range d.Fields {
		if f.Kind == KindOther || f.Size != d.Word || f.Offset != int64(i)*d.Word {
			return false
		}
	}
	return true
}

// Mismatch is one difference between an expected and an actual descriptor.
type Mismatch struct {
	Path string `json:"path" yaml:"path"`
	Want string `json:"want" yaml:"want"`
	Got  string `json:"got" yaml:"got"`
}

// String renders the mismatch as "path: want X, got Y".
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %s, got %s", m.Path, m.Want, m.Got)
}

// Compare lists how got differs from d. An empty result means the layouts agree.
// Names are not compared; callers match descriptors by name first.
func (d Descriptor) Compare(got Descriptor) []Mismatch {
	var out []Mismatch
	add := func(path string, want, have any) {
		w, h := fmt.Sprint(want), fmt.Sprint(have)
		if w != h {
			out = append(out, Mismatch{Path: path, Want: w, Got: h})
		}
	}

	add("discipline", d.Discipline, got.Discipline)
	add("ownership", d.Ownership, got.Ownership)
	add("word", d.Word, got.Word)
	add("size", d.Size, got.Size)
	add("align", d.Align, got.Align)
	add("fields", len(d.Fields), len(got.Fields))

	n := min(len(d.Fields), len(got.Fields))
	for i := 0; i < n; i++ {
		w, g := d.Fields[i], got.Fields[i]
		prefix := fmt.Sprintf("fields[%d]", i)
		add(prefix+".name", w.Name, g.Name)
		add(prefix+".kind", w.Kind, g.Kind)
		add(prefix+".offset", w.Offset, g.Offset)
		add(prefix+".size", w.Size, g.Size)
	}
	return out
}

// canonicalMap is the form hashed by Fingerprint and written by MarshalCanonical.
func (d Descriptor) canonicalMap() map[string]any {
	fields := make([]any, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = map[string]any{
			"name":   f.Name,
			"kind":   string(f.Kind),
			"offset": f.Offset,
			"size":   f.Size,
		}
	}
	return map[string]any{
		"name":       d.Name,
		"discipline": d.Discipline,
		"ownership":  d.Ownership,
		"word":       d.Word,
		"size":       d.Size,
		"align":      d.Align,
		"fields":     fields,
	}
}
