package layer

import (
	"slices"
	"strconv"
	"strings"
)

// Uniquefier maps a numeric uniquefier to a display suffix. The empty suffix
// leaves a candidate name unadorned. The strategy is opaque to this package;
// locale-aware implementations live in pkg/format.
type Uniquefier func(n int) string

// defaultUniquefier stands in when callers pass a nil strategy.
func defaultUniquefier(n int) string {
	if n <= 0 {
		return ""
	}
	return " " + strconv.Itoa(n)
}

// UniqueName returns candidate adorned with the smallest uniquefier suffix
// that collides with no layer name in c, leaving it unadorned when already
// unique. A blank candidate substitutes the base layer name. excludeIndex
// skips one slot during the collision scan (used when renaming a layer in
// place; pass -1 otherwise).
func UniqueName(candidate string, c *Collection, u Uniquefier, excludeIndex int) string {
	return UniqueNameFrom(candidate, c, u, 0, excludeIndex)
}

// UniqueNameFrom is UniqueName with an explicit starting uniquefier number.
// A positive start forces a suffix even when the bare candidate is free,
// which is how brand-new unnamed layers get "Layer 1" rather than "Layer".
// Every retry rescans the whole collection from the start, so names freed by
// deletion elsewhere are reused and suffix gaps stay small.
func UniqueNameFrom(candidate string, c *Collection, u Uniquefier, start, excludeIndex int) string {
	if strings.TrimSpace(candidate) == "" {
		candidate = BaseLayerName
	}
	if u == nil {
		u = defaultUniquefier
	}
	for number := start; ; number++ {
		name := candidate + u(number)
		if IsNameUnique(name, c, excludeIndex) {
			return name
		}
	}
}

// NextAvailableName returns the next available generated layer name, numbered
// from the current collection size (the new layer has not been inserted yet,
// and numbering starts at 0).
func NextAvailableName(c *Collection) string {
	return NextAvailableNameFrom(BaseLayerName, c, c.Len())
}

// NextAvailableNameFrom builds "{base} {n}" starting at start, bumping n and
// rescanning the whole collection until no collision remains.
func NextAvailableNameFrom(base string, c *Collection, start int) string {
	for n := start; ; n++ {
		name := base + " " + strconv.Itoa(n)
		if IsNameUnique(name, c, -1) {
			return name
		}
	}
}

// Add appends candidate to c after enforcing name uniqueness. A nil candidate
// is ignored. A blank name receives the uniquefied base name with a forced
// suffix (so even the first unnamed layer becomes "Layer 1"); a given name is
// left unadorned when already unique.
func Add(c *Collection, candidate *Layer, u Uniquefier) {
	if c == nil || candidate == nil {
		return
	}
	name := candidate.Name()
	if strings.TrimSpace(name) == "" {
		name = UniqueNameFrom(BaseLayerName, c, u, 1, -1)
	} else {
		name = UniqueName(name, c, u, -1)
	}
	// Write the name back in case uniquefication changed it.
	candidate.SetName(name)
	c.Append(candidate)
}

// AddIfUnique appends candidate only when no existing layer shares its name;
// a duplicate is silently skipped.
func AddIfUnique(c *Collection, candidate *Layer) {
	if c == nil || candidate == nil {
		return
	}
	if !Has(c, candidate) {
		c.Append(candidate)
	}
}

// AddClone inserts a clone of the layer immediately preceding insertIndex at
// insertIndex and returns it. Returns nil when the collection is empty or the
// reference slot is out of range. The clone copies color, visibility and lock
// state, is never active, and takes the next available generated name.
func AddClone(c *Collection, insertIndex int) *Layer {
	if c.Len() == 0 {
		return nil
	}
	clone := CloneAt(c, insertIndex-1)
	if clone == nil {
		return nil
	}
	c.Insert(insertIndex, clone)
	return clone
}

// CloneAt clones the layer at referenceIndex, or returns nil when the index
// is out of range.
func CloneAt(c *Collection, referenceIndex int) *Layer {
	return CloneOf(c.Get(referenceIndex), c)
}

// CloneOf clones reference under the next available generated name, or
// returns nil for a nil reference.
func CloneOf(reference *Layer, c *Collection) *Layer {
	if reference == nil {
		return nil
	}
	return reference.Clone(NextAvailableName(c))
}

// Import adds candidate when its name is not already present and returns it
// as affirmation it is safe to assign, even when a duplicate existed and the
// insert was skipped. A nil candidate yields the Default Layer.
func Import(c *Collection, candidate *Layer) *Layer {
	if candidate == nil {
		return GetDefault(c)
	}
	AddIfUnique(c, candidate)
	return candidate
}

// SetActive flags the layer at index active and returns it, or nil when index
// is out of range. No policy runs; use EnforceActivePolicy to clear the rest
// of the collection.
func SetActive(c *Collection, index int) *Layer {
	l := c.Get(index)
	if l != nil && !l.IsActive() {
		l.SetActive(true)
	}
	return l
}

// SetActiveByName flags the layer named name active, defaulting to the
// Default Layer when not found.
func SetActiveByName(c *Collection, name string) *Layer {
	l := GetByName(c, name)
	if l != nil && !l.IsActive() {
		l.SetActive(true)
	}
	return l
}

// SetDefaultActive flags the Default Layer active.
func SetDefaultActive(c *Collection) *Layer {
	return SetActive(c, DefaultLayerIndex)
}

// EnforceActivePolicy makes the layer at index the single active layer in c
// and returns the resulting active layer.
//
// A hidden target is refused unless exemptDefault is set and the target is
// the Default Layer: its active flag is cleared if erroneously set, and
// whichever layer is active after the correction is returned. The exemption
// exists so a fallback activation of the Default Layer can never leave the
// collection with no active layer.
//
// The target is flagged active before the other layers are cleared, so
// listeners never observe a transient state with zero active layers.
func EnforceActivePolicy(c *Collection, index int, exemptDefault bool) *Layer {
	if c.Len() == 0 {
		return nil
	}
	if !exemptDefault || index != DefaultLayerIndex {
		if IsHidden(c, index) {
			if l := c.Get(index); l != nil && l.IsActive() {
				l.SetActive(false)
			}
			return GetActive(c)
		}
	}

	active := SetActive(c, index)
	for i, l := range c.Layers() {
		if i != index && l.IsActive() {
			l.SetActive(false)
		}
	}
	return active
}

// EnforceActivePolicyByName resolves name to an index, defaulting to the
// Default Layer when not found, and delegates to EnforceActivePolicy.
func EnforceActivePolicyByName(c *Collection, name string, exemptDefault bool) *Layer {
	return EnforceActivePolicy(c, GetIndexByName(c, name), exemptDefault)
}

// EnforceHiddenPolicy writes visible onto the layer at index. When a
// non-default layer that was the active layer becomes hidden, activation
// falls back to the Default Layer. The Default Layer's own visibility still
// updates, but hiding it never triggers the fallback and leaves its active
// flag untouched.
func EnforceHiddenPolicy(c *Collection, index int, visible bool) {
	l := c.Get(index)
	if l == nil {
		return
	}
	if l.IsVisible() != visible {
		l.SetVisible(visible)
	}

	if index != DefaultLayerIndex && !visible {
		if GetActiveIndex(c) == index {
			EnforceActivePolicy(c, DefaultLayerIndex, true)
		}
	}
}

// EnforceHiddenPolicyByName resolves name to an index, defaulting to the
// Default Layer when not found, and delegates to EnforceHiddenPolicy.
func EnforceHiddenPolicyByName(c *Collection, name string, visible bool) {
	EnforceHiddenPolicy(c, GetIndexByName(c, name), visible)
}

// GetDefault returns the Default Layer (the layer at the reserved index), or
// nil for an empty collection.
func GetDefault(c *Collection) *Layer {
	return c.Get(DefaultLayerIndex)
}

// GetActive returns the first active layer. When no active flag is set the
// Default Layer is read as implicitly active, without mutating state.
func GetActive(c *Collection) *Layer {
	for _, l := range c.Layers() {
		if l.IsActive() {
			return l
		}
	}
	return GetDefault(c)
}

// GetActiveIndex returns the index of the active layer, or -1 for an empty
// collection.
func GetActiveIndex(c *Collection) int {
	return c.IndexOf(GetActive(c))
}

// GetActiveName returns the active layer's name, or the reserved default name
// for an empty collection.
func GetActiveName(c *Collection) string {
	if l := GetActive(c); l != nil {
		return l.Name()
	}
	return DefaultLayerName
}

// GetByName returns the layer named name. A blank or unknown name falls back
// to the Default Layer; a nil collection yields a freshly constructed default
// layer, so the result is never nil for a non-empty collection.
func GetByName(c *Collection, name string) *Layer {
	if c != nil && strings.TrimSpace(name) != "" {
		for _, l := range c.Layers() {
			if l.Name() == name {
				return l
			}
		}
	}
	if c != nil {
		return GetDefault(c)
	}
	return NewDefaultLayer()
}

// GetIndex returns the position of l in c, or -1 when absent.
func GetIndex(c *Collection, l *Layer) int {
	return c.IndexOf(l)
}

// GetIndexByName resolves name with the usual Default Layer fallback and
// returns the resolved layer's index.
func GetIndexByName(c *Collection, name string) int {
	return c.IndexOf(GetByName(c, name))
}

// HasActive reports whether any layer has its active flag set.
func HasActive(c *Collection) bool {
	for _, l := range c.Layers() {
		if l.IsActive() {
			return true
		}
	}
	return false
}

// Has reports whether c contains a layer with reference's name.
func Has(c *Collection, reference *Layer) bool {
	if reference == nil {
		return false
	}
	name := reference.Name()
	for _, l := range c.Layers() {
		if l.Name() == name {
			return true
		}
	}
	return false
}

// IsHidden reports whether the layer at index is hidden. An out-of-range
// index reads as hidden, so policy checks refuse it.
func IsHidden(c *Collection, index int) bool {
	l := c.Get(index)
	return l == nil || !l.IsVisible()
}

// IsIndexValid reports whether index addresses a layer in c.
func IsIndexValid(c *Collection, index int) bool {
	return index >= 0 && index < c.Len()
}

// IsNameUnique reports whether no layer other than the one at excludeIndex is
// named candidate.
func IsNameUnique(candidate string, c *Collection, excludeIndex int) bool {
	for i, l := range c.Layers() {
		if i != excludeIndex && l.Name() == candidate {
			return false
		}
	}
	return true
}

// AssignableNames returns the ordered distinct names of visible layers. With
// multiEdit, the reserved "various" sentinel is prefixed so editing UIs can
// represent a heterogeneous multi-selection.
func AssignableNames(c *Collection, multiEdit bool) []string {
	names := make([]string, 0, c.Len()+1)
	if multiEdit {
		names = append(names, VariousLayerName)
	}
	for _, l := range c.Layers() {
		if !l.IsVisible() {
			continue
		}
		name := l.Name()
		if strings.TrimSpace(name) == "" {
			continue
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// Reset replaces the contents of c with exactly one fresh Default Layer.
func Reset(c *Collection) {
	if c == nil {
		return
	}
	c.SetAll(NewDefaultLayer())
}

// ReassignDeleted points obj at fallback when its current layer is no longer
// present in c (matched by name). Callers must invoke this for every affected
// object after deleting a layer; the package does not track object-to-layer
// references itself.
func ReassignDeleted(obj Assignable, c *Collection, fallback *Layer) {
	if obj == nil {
		return
	}
	if !Has(c, obj.Layer()) {
		obj.SetLayer(fallback)
	}
}

// UniquefyName renames the layer at index to candidate, enforcing uniqueness
// against every other slot. Renaming the Default Layer is coerced back to the
// reserved name rather than rejected.
//
// When the resolved name equals the current one (a cancelled or no-op edit),
// the name is still written twice, candidate first and resolved value second,
// so listeners watching for value transitions fire even though the final
// state is unchanged.
func UniquefyName(candidate string, u Uniquefier, c *Collection, index int) {
	l := c.Get(index)
	if l == nil {
		return
	}

	prior := l.Name()
	name := DefaultLayerName
	if index != DefaultLayerIndex {
		name = UniqueName(candidate, c, u, index)
	}

	if name == prior {
		l.SetName(candidate)
	}
	l.SetName(name)
}
