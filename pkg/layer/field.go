package layer

// Field is a minimal observable cell holding one mutable layer attribute.
// Set always publishes to watchers, even when the new value equals the old
// one; the rename no-op path relies on this to push a change notification
// through to view listeners when the start and end values are identical.
type Field[T any] struct {
	value    T
	watchers []func(prev, next T)
}

// Get returns the current value.
func (f *Field[T]) Get() T {
	return f.value
}

// Set stores v and publishes the old/new pair to every watcher in
// registration order.
func (f *Field[T]) Set(v T) {
	prev := f.value
	f.value = v
	for _, w := range f.watchers {
		w(prev, v)
	}
}

// Watch registers fn to be called on every subsequent Set.
func (f *Field[T]) Watch(fn func(prev, next T)) {
	f.watchers = append(f.watchers, fn)
}
