// Package oxford parses Oxford Collocation Dictionary markup into per-sense
// collocation cards. Pure functions: markup in, domain structs out. No I/O
// beyond the reader handed to ParseDocument.
//
// The dictionary markup looks like HTML but is not: it nests <head> elements
// inside <entry> elements, which the HTML5 tree-construction algorithm would
// silently discard. The tree is therefore built directly from tokenizer
// events (golang.org/x/net/html) without HTML5 insertion rules.
package oxford

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// NodeType discriminates the two node variants.
type NodeType uint8

const (
	// ElementNode is a tagged element with attributes and children.
	ElementNode NodeType = iota
	// TextNode is a raw text run; Data holds the unescaped text.
	TextNode
)

// Node is one node of a parsed markup document. Nodes are immutable after
// ParseDocument returns; all accessors are read-only.
type Node struct {
	Type     NodeType
	Tag      string // lowercase element tag, "" for text nodes
	Data     string // text content, "" for element nodes
	Children []*Node

	attrs map[string]string
}

// ParseDocument builds a node tree from dictionary markup. The returned node
// is a synthetic root whose children are the document's top-level nodes.
// Stray end tags are ignored; elements left open at EOF are closed there.
func ParseDocument(r io.Reader) (*Node, error) {
	root := &Node{Type: ElementNode, Tag: "#root"}
	stack := []*Node{root}

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return root, nil
			}
			return nil, fmt.Errorf("oxford: tokenize markup: %w", z.Err())

		case html.StartTagToken:
			n := elementFromToken(z.Token())
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
			stack = append(stack, n)

		case html.SelfClosingTagToken:
			n := elementFromToken(z.Token())
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)

		case html.EndTagToken:
			name, _ := z.TagName()
			stack = popToTag(stack, string(name))

		case html.TextToken:
			text := string(z.Text())
			if text == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Type: TextNode, Data: text})
		}
		// Comments and doctypes carry no dictionary content.
	}
}

func elementFromToken(t html.Token) *Node {
	n := &Node{Type: ElementNode, Tag: t.Data}
	if len(t.Attr) > 0 {
		n.attrs = make(map[string]string, len(t.Attr))
		for _, a := range t.Attr {
			if _, seen := n.attrs[a.Key]; !seen {
				n.attrs[a.Key] = a.Val
			}
		}
	}
	return n
}

// popToTag closes the innermost open element with the given tag, implicitly
// closing everything opened inside it. A stray end tag leaves the stack as is.
func popToTag(stack []*Node, tag string) []*Node {
	for i := len(stack) - 1; i > 0; i-- {
		if stack[i].Tag == tag {
			return stack[:i]
		}
	}
	return stack
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	return n.attrs[name]
}

// FindFirst returns the first descendant element with the given tag in
// document order, or nil.
func (n *Node) FindFirst(tag string) *Node {
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		if c.Tag == tag {
			return c
		}
		if found := c.FindFirst(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given tag in document order.
func (n *Node) FindAll(tag string) []*Node {
	var found []*Node
	n.appendAll(tag, &found)
	return found
}

func (n *Node) appendAll(tag string, found *[]*Node) {
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		if c.Tag == tag {
			*found = append(*found, c)
		}
		c.appendAll(tag, found)
	}
}

// ChildrenByTag returns the direct element children with the given tag,
// without descending into nested structure.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var children []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode && c.Tag == tag {
			children = append(children, c)
		}
	}
	return children
}

// Text returns the concatenated text of the node and all its descendants.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b, nil)
	return b.String()
}

// TextExcluding returns the concatenated text of the node's descendants,
// skipping the subtrees of any element whose tag is in excluded. The tree is
// never modified; exclusion happens during traversal.
func (n *Node) TextExcluding(excluded ...string) string {
	skip := make(map[string]bool, len(excluded))
	for _, tag := range excluded {
		skip[tag] = true
	}
	var b strings.Builder
	n.writeText(&b, skip)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder, skip map[string]bool) {
	if n.Type == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, c := range n.Children {
		if c.Type == ElementNode && skip[c.Tag] {
			continue
		}
		c.writeText(b, skip)
	}
}
