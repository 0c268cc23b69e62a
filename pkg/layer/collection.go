package layer

import "slices"

// Collection is an ordered, index-accessible, mutable sequence of layers.
// A collection is owned by its caller (a document or scene model); the
// package-level policy functions hold no reference to it between calls.
// Read methods tolerate a nil receiver and report emptiness instead of
// panicking.
type Collection struct {
	layers []*Layer
}

// NewCollection returns a collection seeded with exactly one Default Layer.
func NewCollection() *Collection {
	c := &Collection{}
	Reset(c)
	return c
}

// Len returns the number of layers.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.layers)
}

// Get returns the layer at index, or nil when index is out of range.
func (c *Collection) Get(index int) *Layer {
	if c == nil || index < 0 || index >= len(c.layers) {
		return nil
	}
	return c.layers[index]
}

// Append adds l to the end of the collection.
func (c *Collection) Append(l *Layer) {
	c.layers = append(c.layers, l)
}

// Insert places l at index, clamping index into [0, Len].
func (c *Collection) Insert(index int, l *Layer) {
	if index < 0 {
		index = 0
	}
	if index > len(c.layers) {
		index = len(c.layers)
	}
	c.layers = slices.Insert(c.layers, index, l)
}

// RemoveAt removes and returns the layer at index, or nil when index is out
// of range. Removal is caller-managed; after removing a layer, run
// ReassignDeleted for every object that referenced it.
func (c *Collection) RemoveAt(index int) *Layer {
	if c == nil || index < 0 || index >= len(c.layers) {
		return nil
	}
	l := c.layers[index]
	c.layers = slices.Delete(c.layers, index, index+1)
	return l
}

// IndexOf returns the position of l, or -1 when absent.
func (c *Collection) IndexOf(l *Layer) int {
	if c == nil || l == nil {
		return -1
	}
	return slices.Index(c.layers, l)
}

// Layers returns the backing slice for iteration. Callers must not grow or
// reorder it directly.
func (c *Collection) Layers() []*Layer {
	if c == nil {
		return nil
	}
	return c.layers
}

// SetAll replaces the contents of the collection.
func (c *Collection) SetAll(layers ...*Layer) {
	c.layers = slices.Clone(layers)
}

// Sort stably orders the collection by Compare, keeping the Default Layer
// first.
func (c *Collection) Sort() {
	if c == nil {
		return
	}
	slices.SortStableFunc(c.layers, func(a, b *Layer) int {
		return a.Compare(b)
	})
}
