package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
)

// InnerText creates a text cord for the textual content of a node and all
// its descendents, similar to
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that styles suppressing the visibility of
// descendents are not respected. Every text node contributes one leaf.
func InnerText(n Node) (cords.Cord, error) {
	if n.IsNull() {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	if err := collectText(n, b); err != nil {
		return cords.Cord{}, err
	}
	return b.Cord(), nil
}

func collectText(n Node, b *cords.Builder) error {
	if n.IsText() {
		if n.Text() == "" {
			return nil
		}
		parent := n.Parent()
		for !parent.IsNull() && !parent.IsElement() {
			parent = parent.Parent()
		}
		return b.Append(&TextLeaf{element: parent, content: n.Text()})
	}
	for _, c := range n.Children() {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}

// TextLeaf is the leaf type of cords created by InnerText. It remembers the
// element the text belongs to.
type TextLeaf struct {
	element Node
	content string
}

// Element returns the element containing the text of the leaf.
func (l *TextLeaf) Element() Node {
	return l.element
}

// Weight of a leaf is its string length in bytes.
func (l *TextLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l *TextLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l *TextLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return &TextLeaf{element: l.element, content: l.content[:i]},
		&TextLeaf{element: l.element, content: l.content[i:]}
}

// Substring returns a string segment of the leaf's text fragment.
func (l *TextLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = &TextLeaf{}

func (l *TextLeaf) dbgString() string {
	cont := strings.Replace(l.content, "\n", "_", -1)
	return fmt.Sprintf("{<%s> \"%s\"}", l.element.NodeName(), cont)
}
