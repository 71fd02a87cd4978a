package zsvg

import (
	"slices"
	"strings"
)

type Attr struct {
	Key   string
	Value any
}

// Node is an svg element with ordered attributes, optional text and children.
// Attribute values are kept as given (float64, string etc), and formatted when written.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
	parent   *Node
}

// NewNode creates a node with tag, and attributes as key, value pairs
func NewNode(tag string, keyVals ...any) *Node {
	n := &Node{Tag: tag}
	n.SetPairs(keyVals...)
	return n
}

func (n *Node) SetPairs(keyVals ...any) {
	for i := 0; i+1 < len(keyVals); i += 2 {
		n.Set(keyVals[i].(string), keyVals[i+1])
	}
}

// Add creates a child of n
func (n *Node) Add(tag string, keyVals ...any) *Node {
	c := NewNode(tag, keyVals...)
	n.AddChild(c)
	return c
}

func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Set(key string, value any) {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

func (n *Node) Get(key string) any {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return nil
}

// Float returns a float64 attribute, and false if it isn't set as one
func (n *Node) Float(key string) (float64, bool) {
	f, got := n.Get(key).(float64)
	return f, got
}

func (n *Node) String(key string) string {
	s, _ := n.Get(key).(string)
	return s
}

func (n *Node) Classes() []string {
	return strings.Fields(n.String("class"))
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes(), class)
}

// Walk calls f for n and all descendants depth-first, stopping if f returns false.
func (n *Node) Walk(f func(c *Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(f) {
			return false
		}
	}
	return true
}

func (n *Node) FindAll(match func(c *Node) bool) []*Node {
	var found []*Node
	n.Walk(func(c *Node) bool {
		if match(c) {
			found = append(found, c)
		}
		return true
	})
	return found
}

func (n *Node) FindAllWithClass(class string) []*Node {
	return n.FindAll(func(c *Node) bool {
		return c.HasClass(class)
	})
}

func (n *Node) FindAllWithTag(tag string) []*Node {
	return n.FindAll(func(c *Node) bool {
		return c.Tag == tag
	})
}

// ChildWithTag returns the first direct child with tag and class (if class != "")
func (n *Node) ChildWithTag(tag, class string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag && (class == "" || c.HasClass(class)) {
			return c
		}
	}
	return nil
}
