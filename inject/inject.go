package inject

import "reflect"

// Wired is a constructed value plus a bag of recorded dependencies.
//
// Value is the constructed instance. Deps records dependency pointers keyed
// by Key for introspection and debugging; it is intentionally loose
// (map[Key]any) so any pointer type can be attached.
//
// Typed retrieval is available via DepAs / TryDepAs / MustDepAs.
type Wired[T any] struct {
	Value *T
	Deps  map[Key]any
}

// Init constructs a Wired value by calling ctor and initializing the dep bag.
//
// Init with no further Steps is plain construction; the guardrails only
// appear once Bind/Apply enter the picture.
func Init[T any](ctor func() *T) *Wired[T] {
	return &Wired[T]{Value: ctor(), Deps: make(map[Key]any)}
}

// Step mutates a Wired value in place and reports wiring failures.
//
// Steps are applied via (*Wired[T]).Apply.
type Step[T any] func(*Wired[T]) error

// Apply runs the steps in order, stopping at the first error.
//
// Nil steps are skipped.
func (w *Wired[T]) Apply(steps ...Step[T]) (*Wired[T], error) {
	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(w); err != nil {
			return w, err
		}
	}
	return w, nil
}

// Bind builds a Step that records dep under key and attaches it to the target.
//
// The returned Step fails with:
//   - ErrNilTarget when the target (or its Value) is nil
//   - NilDependencyError{Key} when dep (or its Value) is nil
//   - NilAttachError{Key} when attach is nil
//   - DuplicateKeyError{Key} when key was already recorded on the target
func Bind[T any, D any](key Key, dep *Wired[D], attach func(target *T, dep *D)) Step[T] {
	return func(w *Wired[T]) error {
		if w == nil || w.Value == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Value == nil {
			return NilDependencyError{Key: key}
		}
		if attach == nil {
			return NilAttachError{Key: key}
		}
		if w.Deps == nil {
			w.Deps = make(map[Key]any)
		}
		if _, exists := w.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		d := dep.Value
		w.Deps[key] = d
		attach(w.Value, d)
		return nil
	}
}

// Has reports whether a dependency was recorded for key, regardless of type.
func (w *Wired[T]) Has(key Key) bool {
	if w == nil || w.Deps == nil {
		return false
	}
	_, ok := w.Deps[key]
	return ok
}

// Dep returns the raw recorded dependency without type assertions.
func (w *Wired[T]) Dep(key Key) (any, bool) {
	if w == nil || w.Deps == nil {
		return nil, false
	}
	v, ok := w.Deps[key]
	return v, ok
}

// DepAs returns the dependency recorded under key typed as *D.
//
// ok is false when the key is missing or the stored value is not a *D.
func DepAs[T any, D any](w *Wired[T], key Key) (*D, bool) {
	if w == nil || w.Deps == nil {
		return nil, false
	}
	raw, ok := w.Deps[key]
	if !ok || raw == nil {
		return nil, false
	}
	d, ok := raw.(*D)
	return d, ok
}

// TryDepAs returns the dependency recorded under key typed as *D.
//
// It returns:
//   - MissingDependencyError when the key is not present
//   - WrongTypeDependencyError when the key exists but is not a *D
//
// Error construction avoids fmt so the failure paths stay cheap enough for
// control flow (the "is this wired?" checks in tests and benchmarks).
func TryDepAs[T any, D any](w *Wired[T], key Key) (*D, error) {
	if w == nil || w.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := w.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// MustDepAs returns the dependency typed as *D or panics.
//
// Useful in tests and "cannot happen" wiring assumptions.
func MustDepAs[T any, D any](w *Wired[T], key Key) *D {
	d, ok := DepAs[T, D](w, key)
	if !ok {
		panic(MissingDependencyError{Key: key})
	}
	return d
}

// Clone returns a shallow copy of the Wired value.
//
// The constructed Value pointer is shared; the dep bag is copied into a new
// map so further wiring does not mutate the original.
func (w *Wired[T]) Clone() *Wired[T] {
	if w == nil {
		return nil
	}
	cp := &Wired[T]{Value: w.Value}
	if len(w.Deps) > 0 {
		cp.Deps = make(map[Key]any, len(w.Deps))
		for k, v := range w.Deps {
			cp.Deps[k] = v
		}
	} else {
		cp.Deps = make(map[Key]any)
	}
	return cp
}
