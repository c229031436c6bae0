package dom

import (
	"slices"
)

// Event types dispatched by elements
const (
	EventChange = "change"
)

// Input element tags
const (
	TagInput = "input"
)

// Event is delivered to listeners of an element and its ancestors
type Event struct {
	Type   string
	Target *Element
}

// Listener handles an event dispatched on an element or one of its descendants
type Listener func(Event)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Element is a node of the table's element tree. Inputs also carry their
// checkbox state, the way a checkbox input element does.
type Element struct {
	Tag string

	parent   *Element
	children []*Element
	classes  []string
	attrs    map[string]string
	text     string

	checked       bool
	indeterminate bool
	disabled      bool

	listeners map[string][]listenerEntry
	nextID    uint64
}

// New creates a detached element with the given classes
func New(tag string, classes ...string) *Element {
	e := &Element{
		Tag:   tag,
		attrs: make(map[string]string),
	}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// Append adds children to the element and returns the element
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

func (e *Element) remove(child *Element) {
	if i := slices.Index(e.children, child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	child.parent = nil
}

// Remove detaches the element from its parent
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.remove(e)
	}
}

// Parent returns the parent element, nil for a root or detached element
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// AddClass adds a class if not already present
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes a class if present
func (e *Element) RemoveClass(class string) {
	if i := slices.Index(e.classes, class); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// HasClass reports whether the element carries class
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// Classes returns a copy of the element's classes
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// Attr returns an attribute value and whether it is set
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute value
func (e *Element) SetAttr(name, value string) {
	e.attrs[name] = value
}

// RemoveAttr deletes an attribute
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Text returns the element's own text content
func (e *Element) Text() string { return e.text }

// SetText replaces the element's own text content
func (e *Element) SetText(text string) { e.text = text }

// Checked reports the checked state of an input element
func (e *Element) Checked() bool { return e.checked }

// SetChecked sets the checked state without dispatching an event
func (e *Element) SetChecked(checked bool) { e.checked = checked }

// Indeterminate reports the indeterminate state of an input element
func (e *Element) Indeterminate() bool { return e.indeterminate }

// SetIndeterminate sets the indeterminate state without dispatching an event
func (e *Element) SetIndeterminate(indeterminate bool) { e.indeterminate = indeterminate }

// Disabled reports whether the input ignores clicks
func (e *Element) Disabled() bool { return e.disabled }

// SetDisabled enables or disables the input
func (e *Element) SetDisabled(disabled bool) { e.disabled = disabled }

// Click simulates a user toggling an input: the checked state flips,
// indeterminate clears, and a change event bubbles from the element.
// Clicking a non-input or a disabled input does nothing.
func (e *Element) Click() {
	if e.Tag != TagInput || e.disabled {
		return
	}
	e.checked = !e.checked
	e.indeterminate = false
	e.Dispatch(Event{Type: EventChange, Target: e})
}

// Contains reports whether other is e or one of its descendants
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Closest returns the nearest element, starting at e and walking up, that
// carries class. It returns nil when no ancestor matches.
func (e *Element) Closest(class string) *Element {
	for n := e; n != nil; n = n.parent {
		if n.HasClass(class) {
			return n
		}
	}
	return nil
}

// Query returns the first descendant carrying class in document order
func (e *Element) Query(class string) *Element {
	for _, c := range e.children {
		if c.HasClass(class) {
			return c
		}
		if found := c.Query(class); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant carrying class in document order
func (e *Element) QueryAll(class string) []*Element {
	var out []*Element
	e.walk(func(n *Element) {
		if n != e && n.HasClass(class) {
			out = append(out, n)
		}
	})
	return out
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}

// AddEventListener registers fn for events of the given type dispatched on
// e or any descendant. The returned function removes the listener.
func (e *Element) AddEventListener(eventType string, fn Listener) func() {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.nextID++
	id := e.nextID
	e.listeners[eventType] = append(e.listeners[eventType], listenerEntry{id: id, fn: fn})

	return func() {
		entries := e.listeners[eventType]
		for i, l := range entries {
			if l.id == id {
				e.listeners[eventType] = slices.Delete(slices.Clone(entries), i, i+1)
				return
			}
		}
	}
}

// ListenerCount returns how many listeners of eventType are registered on e
func (e *Element) ListenerCount(eventType string) int {
	return len(e.listeners[eventType])
}

// Dispatch delivers ev to listeners on e, then on each ancestor in turn
func (e *Element) Dispatch(ev Event) {
	for n := e; n != nil; n = n.parent {
		for _, l := range slices.Clone(n.listeners[ev.Type]) {
			l.fn(ev)
		}
	}
}
