// Package dom models the parts of a document the theme engine writes to:
// root style custom properties, root attributes and classes, and body styles.
package dom

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Target receives projected theme state.
type Target interface {
	SetProperty(name, value string) error
	RemoveProperty(name string)
	Property(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	Attribute(name string) (string, bool)
	ToggleClass(name string, on bool)
	SetBodyStyle(name, value string)
}

// Document is an in-memory Target. It is safe for concurrent use.
type Document struct {
	mu         sync.RWMutex
	properties map[string]string
	attributes map[string]string
	classes    map[string]struct{}
	body       map[string]string
}

var _ Target = (*Document)(nil)

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		properties: make(map[string]string),
		attributes: make(map[string]string),
		classes:    make(map[string]struct{}),
		body:       make(map[string]string),
	}
}

// SetProperty writes a custom property on the root element.
func (d *Document) SetProperty(name, value string) error {
	if !strings.HasPrefix(name, "--") {
		return fmt.Errorf("property %q is not a custom property", name)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.properties[name] = value
	return nil
}

// RemoveProperty deletes a custom property.
func (d *Document) RemoveProperty(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.properties, name)
}

// Property reads a custom property.
func (d *Document) Property(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.properties[name]
	return v, ok
}

// Properties returns a copy of every custom property.
func (d *Document) Properties() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyMap(d.properties)
}

// SetAttribute sets a root attribute.
func (d *Document) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attributes[name] = value
}

// RemoveAttribute deletes a root attribute.
func (d *Document) RemoveAttribute(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.attributes, name)
}

// Attribute reads a root attribute.
func (d *Document) Attribute(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.attributes[name]
	return v, ok
}

// Attributes returns a copy of every root attribute.
func (d *Document) Attributes() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyMap(d.attributes)
}

// ToggleClass adds or removes a root class.
func (d *Document) ToggleClass(name string, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if on {
		d.classes[name] = struct{}{}
		return
	}
	delete(d.classes, name)
}

// HasClass reports whether the root carries class name.
func (d *Document) HasClass(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.classes[name]
	return ok
}

// SetBodyStyle writes an inline style on the body element.
func (d *Document) SetBodyStyle(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.body[name] = value
}

// BodyStyle reads an inline body style.
func (d *Document) BodyStyle(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.body[name]
	return v, ok
}

// CSS renders the document as a stylesheet: a :root rule holding every
// custom property sorted by name, followed by the body rule.
func (d *Document) CSS() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var b strings.Builder
	b.WriteString(":root")
	for _, name := range sortedKeys(d.attributes) {
		fmt.Fprintf(&b, "[%s=%q]", name, d.attributes[name])
	}
	b.WriteString(" {\n")
	for _, name := range sortedKeys(d.properties) {
		fmt.Fprintf(&b, "  %s: %s;\n", name, d.properties[name])
	}
	b.WriteString("}\n")

	if len(d.body) > 0 {
		b.WriteString("\nbody {\n")
		for _, name := range sortedKeys(d.body) {
			fmt.Fprintf(&b, "  %s: %s;\n", name, d.body[name])
		}
		b.WriteString("}\n")
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
