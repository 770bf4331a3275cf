package document

import "strings"

// Element is one node of the raw document tree: a local tag name, its
// namespace URI, attributes, optional text and ordered children.
type Element struct {
	// Name is the local, namespace-stripped tag name.
	Name string
	// Space is the namespace URI the tag was qualified with, if any.
	Space string
	// Attrs maps local attribute names to values.
	Attrs map[string]string
	// Text is the trimmed character data directly inside the element.
	Text string
	// Children holds the child elements in document order.
	Children []*Element
}

// Attr returns the value of the named attribute, or the empty string.
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Child returns the first direct child whose local name matches, or nil.
func (e *Element) Child(local string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == local {
			return c
		}
	}
	return nil
}

// ChildText returns the trimmed text of the first direct child with the
// given local name, or the empty string when the child is absent.
func (e *Element) ChildText(local string) string {
	if c := e.Child(local); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

// Find returns the first descendant (depth-first, self excluded) with the
// given local name, or nil.
func (e *Element) Find(local string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == local {
			return c
		}
		if found := c.Find(local); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given local name in document
// order. The search does not descend into matching elements, mirroring the
// one-level-at-a-time recursion the extraction walkers rely on.
func (e *Element) FindAll(local string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Name == local {
			out = append(out, c)
			continue
		}
		out = append(out, c.FindAll(local)...)
	}
	return out
}

// Count returns the number of elements in the tree rooted at e, including
// e itself.
func (e *Element) Count() int {
	if e == nil {
		return 0
	}
	n := 1
	for _, c := range e.Children {
		n += c.Count()
	}
	return n
}
