package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Node — то, что экстрактору нужно от DOM: поиск потомков по селектору,
// атрибуты, текст и обход непосредственных детей (включая текстовые узлы).
type Node interface {
	Find(selector string) []Node
	First(selector string) (Node, bool)
	Attr(name string) (string, bool)
	Text() string
	Name() string
	Classes() []string
	Children() []Node
}

const (
	textNodeName = "#text"
)

type selectionNode struct {
	sel *goquery.Selection
}

// Wrap оборачивает goquery.Selection (первый узел) в Node
func Wrap(sel *goquery.Selection) Node {
	return selectionNode{sel: sel.First()}
}

func (n selectionNode) Find(selector string) []Node {
	var nodes []Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, selectionNode{sel: s})
	})
	return nodes
}

func (n selectionNode) First(selector string) (Node, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return selectionNode{sel: found}, true
}

func (n selectionNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n selectionNode) Text() string {
	return n.sel.Text()
}

func (n selectionNode) Name() string {
	return goquery.NodeName(n.sel)
}

func (n selectionNode) Classes() []string {
	class, _ := n.sel.Attr("class")
	return strings.Fields(class)
}

func (n selectionNode) Children() []Node {
	var nodes []Node
	n.sel.Contents().Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, selectionNode{sel: s})
	})
	return nodes
}

func hasClass(n Node, class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// strippedText склеивает текстовые узлы, обрезая пробелы у каждого
func strippedText(n Node) string {
	var b strings.Builder
	var walk func(Node)
	walk = func(cur Node) {
		for _, child := range cur.Children() {
			if child.Name() == textNodeName {
				b.WriteString(strings.TrimSpace(child.Text()))
				continue
			}
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
