package display

import (
	"fmt"
	"io"

	"github.com/npillmayer/arbor"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the shape of tree as nested unordered lists:
//
//	<ul class="arbor">
//	  <li><span>root</span>
//	    <ul>
//	      <li class="left"><span>one</span> … </li>
//	      <li class="right"><span>two</span></li>
//	    </ul>
//	  </li>
//	</ul>
//
// Missing children are omitted; the class attribute tells left and right
// children apart. Payload text is escaped.
func HTML[T any](w io.Writer, tree *arbor.Tree[T]) error {
	top := element(atom.Ul, "arbor")
	if root := tree.Root(); root != nil {
		top.AppendChild(listItem(root, ""))
	}
	return html.Render(w, top)
}

func listItem[T any](n *arbor.Node[T], class string) *html.Node {
	li := element(atom.Li, class)
	span := element(atom.Span, "")
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprint(n.Payload()),
	})
	li.AppendChild(span)
	if n.IsLeaf() {
		return li
	}
	ul := element(atom.Ul, "")
	if left := n.Left(); left != nil {
		ul.AppendChild(listItem(left, "left"))
	}
	if right := n.Right(); right != nil {
		ul.AppendChild(listItem(right, "right"))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
