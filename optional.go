package sparkle

// Optional holds a value that may be absent. The zero value is absent.
// Bubble overlay fields use it to keep "overridden" distinct from "render the
// base value", which a sentinel number cannot express.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value if present, otherwise def.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Set stores v and marks the Optional present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Clear marks the Optional absent.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.set = false
}
