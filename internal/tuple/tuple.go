package tuple

// Tuple is implemented by every packed form except arity 1, which is the bare value.
type Tuple interface {
	Arity() int
	Values() []any
}

// Unit is the packed form of an empty argument list.
type Unit struct{}

// T2 packs two arguments.
type T2[A, B any] struct {
	V0 A
	V1 B
}

// T3 packs three arguments.
type T3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// T4 packs four arguments.
type T4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Pack0 returns the empty argument tuple.
func Pack0() Unit { return Unit{} }

// Pack1 is the identity; it exists so call sites read the same at every arity.
func Pack1[A any](a A) A { return a }

// Pack2 packs two arguments in order.
func Pack2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{V0: a, V1: b}
}

// Pack3 packs three arguments in order.
func Pack3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{V0: a, V1: b, V2: c}
}

// Pack4 packs four arguments in order.
func Pack4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{V0: a, V1: b, V2: c, V3: d}
}

// Arity returns the number of packed arguments.
func (Unit) Arity() int { return 0 }

// Values returns the packed arguments in order.
func (Unit) Values() []any { return []any{} }

// Arity returns the number of packed arguments.
func (T2[A, B]) Arity() int { return 2 }

// Arity returns the number of packed arguments.
func (T3[A, B, C]) Arity() int { return 3 }

// Arity returns the number of packed arguments.
func (T4[A, B, C, D]) Arity() int { return 4 }

// Unpack returns the packed arguments in order.
func (t T2[A, B]) Unpack() (A, B) { return t.V0, t.V1 }

// Values returns the packed arguments in order.
func (t T2[A, B]) Values() []any { return []any{t.V0, t.V1} }

// Unpack returns the packed arguments in order.
func (t T3[A, B, C]) Unpack() (A, B, C) { return t.V0, t.V1, t.V2 }

// Values returns the packed arguments in order.
func (t T3[A, B, C]) Values() []any { return []any{t.V0, t.V1, t.V2} }

// Unpack returns the packed arguments in order.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) { return t.V0, t.V1, t.V2, t.V3 }

// Values returns the packed arguments in order.
func (t T4[A, B, C, D]) Values() []any { return []any{t.V0, t.V1, t.V2, t.V3} }

// Values flattens a packed argument into its elements.
// A Tuple expands to its members; any other value is a single argument.
func Values(packed any) []any {
	if t, ok := packed.(Tuple); ok {
		return t.Values()
	}
	return []any{packed}
}

// Arity returns the number of arguments a packed value stands for.
func Arity(packed any) int {
	if t, ok := packed.(Tuple); ok {
		return t.Arity()
	}
	return 1
}
