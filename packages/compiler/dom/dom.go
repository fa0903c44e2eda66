// Package dom parses template markup into element trees and inspects elements.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoElement is returned when a template contains no element
var ErrNoElement = errors.New("template contains no element")

// ParseTemplate parses template markup the way the content of a <template>
// element is parsed, so top level <template>, <tr> or <td> elements are kept.
// The parsed nodes are returned as children of a synthetic <body> element
// that acts as the host view root.
func ParseTemplate(src string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	host := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		host.AppendChild(n)
	}
	return host, nil
}

// ParseElement parses template markup and returns its first element
func ParseElement(src string) (*html.Node, error) {
	body, err := ParseTemplate(src)
	if err != nil {
		return nil, err
	}
	children := ElementChildren(body)
	if len(children) == 0 {
		return nil, ErrNoElement
	}
	return children[0], nil
}

// IsElement reports whether n is an element node
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// ElementChildren returns the element children of n in document order
func ElementChildren(n *html.Node) []*html.Node {
	children := goquery.NewDocumentFromNode(n).Children().Nodes
	if children == nil {
		return []*html.Node{}
	}
	return children
}

// Attribute returns the value of the named attribute
func Attribute(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether n carries the named attribute
func HasAttribute(n *html.Node, name string) bool {
	_, ok := Attribute(n, name)
	return ok
}

// Describe renders the start tag of an element, used to locate it in errors
func Describe(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Type != html.ElementNode {
		return fmt.Sprintf("#node(%d)", n.Type)
	}
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, attr := range n.Attr {
		sb.WriteString(" ")
		if attr.Namespace != "" {
			sb.WriteString(attr.Namespace)
			sb.WriteString(":")
		}
		sb.WriteString(attr.Key)
		if attr.Val != "" {
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(attr.Val))
			sb.WriteString(`"`)
		}
	}
	sb.WriteString(">")
	return sb.String()
}
