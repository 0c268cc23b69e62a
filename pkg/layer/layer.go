// Package layer implements an in-memory model of named, colored, toggleable
// layers used to organize drawable objects into groups, plus the stateless
// policy operations that keep an ordered layer collection consistent: name
// uniqueness, single-active-layer enforcement, hidden/active coupling,
// cloning, and reassignment after deletion.
//
// The collection is owned by the caller; every operation here is a pure
// function of the collection it is passed. Expected edge cases never fail:
// nil candidates are ignored, out-of-range lookups return nil, and unknown
// names fall back to the Default Layer.
package layer

import (
	"image/color"
	"strings"
)

// Reserved names and defaults for the layer model.
const (
	// BaseLayerName is the base for generated layer names
	BaseLayerName = "Layer"

	// DefaultLayerName is the reserved name of the Default Layer (invariant)
	DefaultLayerName = "Layer 0"

	// DefaultLayerIndex is the enforced position of the Default Layer
	DefaultLayerIndex = 0

	// TempLayerName is the reserved name for transient layers used by
	// clipboard-style operations (cut/copy/paste)
	TempLayerName = "temp"

	// VariousLayerName is the sentinel name representing a heterogeneous
	// multi-selection in editing UIs
	VariousLayerName = "various"
)

// Default field values for new layers.
const (
	DefaultActive  = false
	DefaultVisible = true
	DefaultLocked  = false
)

// DefaultColor is the color assigned to new layers (opaque black).
var DefaultColor = color.RGBA{A: 0xFF}

// Layer is a single layer record. All mutable attributes live in observable
// cells so UI bindings can watch individual fields.
type Layer struct {
	name    Field[string]
	color   Field[color.RGBA]
	active  Field[bool]
	visible Field[bool]
	locked  Field[bool]
}

// New creates a layer with the given attributes.
func New(name string, c color.RGBA, active, visible, locked bool) *Layer {
	l := &Layer{}
	l.name.Set(name)
	l.color.Set(c)
	l.active.Set(active)
	l.visible.Set(visible)
	l.locked.Set(locked)
	return l
}

// NewLayer returns a layer with every attribute at its default value.
func NewLayer() *Layer {
	return New(BaseLayerName, DefaultColor, DefaultActive, DefaultVisible, DefaultLocked)
}

// NewDefaultLayer returns a fresh Default Layer: reserved name, active,
// visible, unlocked.
func NewDefaultLayer() *Layer {
	return New(DefaultLayerName, DefaultColor, true, true, false)
}

// NewTempLayer returns the transient layer used for clipboard-style
// operations: reserved temp name, inactive, visible, unlocked.
func NewTempLayer() *Layer {
	return New(TempLayerName, DefaultColor, false, true, false)
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name.Get() }

// SetName sets the layer name. Watchers are notified even when the value is
// unchanged.
func (l *Layer) SetName(name string) { l.name.Set(name) }

// Color returns the layer color.
func (l *Layer) Color() color.RGBA { return l.color.Get() }

// SetColor sets the layer color.
func (l *Layer) SetColor(c color.RGBA) { l.color.Set(c) }

// IsActive reports whether the layer is the current editing target.
func (l *Layer) IsActive() bool { return l.active.Get() }

// SetActive sets the active flag. Policy (at most one active layer, hidden
// layers cannot be active) is enforced by EnforceActivePolicy, not here.
func (l *Layer) SetActive(active bool) { l.active.Set(active) }

// IsVisible reports whether the layer is visible; hidden is the negation.
func (l *Layer) IsVisible() bool { return l.visible.Get() }

// SetVisible sets the visibility flag.
func (l *Layer) SetVisible(visible bool) { l.visible.Set(visible) }

// IsLocked reports whether editing is disabled for the layer. The flag is
// stored only; nothing in this package enforces it.
func (l *Layer) IsLocked() bool { return l.locked.Get() }

// SetLocked sets the lock flag.
func (l *Layer) SetLocked(locked bool) { l.locked.Set(locked) }

// WatchName registers fn for name changes.
func (l *Layer) WatchName(fn func(prev, next string)) { l.name.Watch(fn) }

// WatchColor registers fn for color changes.
func (l *Layer) WatchColor(fn func(prev, next color.RGBA)) { l.color.Watch(fn) }

// WatchActive registers fn for active flag changes.
func (l *Layer) WatchActive(fn func(prev, next bool)) { l.active.Watch(fn) }

// WatchVisible registers fn for visibility changes.
func (l *Layer) WatchVisible(fn func(prev, next bool)) { l.visible.Watch(fn) }

// WatchLocked registers fn for lock flag changes.
func (l *Layer) WatchLocked(fn func(prev, next bool)) { l.locked.Watch(fn) }

// Compare orders layers by name, case-sensitive, except that the Default
// Layer sorts before every other layer regardless of lexicographic order.
func (l *Layer) Compare(other *Layer) int {
	name := l.Name()
	otherName := other.Name()
	if name == otherName {
		return 0
	}
	if name == DefaultLayerName {
		return -1
	}
	if otherName == DefaultLayerName {
		return 1
	}
	return strings.Compare(name, otherName)
}

// Clone returns a copy carrying the receiver's color, visibility and lock
// state under the given name. A clone is never active.
func (l *Layer) Clone(name string) *Layer {
	return New(name, l.Color(), false, l.IsVisible(), l.IsLocked())
}

// Labeled is a generic labeled-entity capability for utilities that operate
// on any named record. Layer aliases it to its name field.
type Labeled interface {
	Label() string
	SetLabel(label string)
}

// Label returns the layer name.
func (l *Layer) Label() string { return l.Name() }

// SetLabel sets the layer name.
func (l *Layer) SetLabel(label string) { l.SetName(label) }

// Assignable is any external object carrying a layer reference, consumed by
// ReassignDeleted after a layer is removed from its collection.
type Assignable interface {
	Layer() *Layer
	SetLayer(l *Layer)
}
