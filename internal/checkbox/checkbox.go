package checkbox

import (
	"tablesel/internal/dom"
)

// Checkbox is the sub-widget bound to one checkbox input element.
// Its state lives on the element; the widget only mediates access to it.
type Checkbox struct {
	el        *dom.Element
	destroyed bool
}

// New binds a checkbox widget to an input element
func New(el *dom.Element) *Checkbox {
	return &Checkbox{el: el}
}

// Element returns the bound input element
func (c *Checkbox) Element() *dom.Element { return c.el }

// Checked reports the input's checked state
func (c *Checkbox) Checked() bool { return c.el.Checked() }

// SetChecked updates the input's checked state. No-op after Destroy.
func (c *Checkbox) SetChecked(checked bool) {
	if c.destroyed {
		return
	}
	c.el.SetChecked(checked)
}

// Indeterminate reports the input's indeterminate state
func (c *Checkbox) Indeterminate() bool { return c.el.Indeterminate() }

// SetIndeterminate updates the input's indeterminate state. No-op after Destroy.
func (c *Checkbox) SetIndeterminate(indeterminate bool) {
	if c.destroyed {
		return
	}
	c.el.SetIndeterminate(indeterminate)
}

// Destroy releases the widget. The element keeps its last state.
func (c *Checkbox) Destroy() {
	c.destroyed = true
}

// Destroyed reports whether Destroy has been called
func (c *Checkbox) Destroyed() bool { return c.destroyed }
