package arbor

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as small empty circles,
// so left and right children may be told apart.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	empty := 0 // empty children are named "e1", "e2", …, apart from node ids
	var nodelist, edgelist strings.Builder
	for node := range tree.Nodes() {
		ID := ids.alloc(node)
		label := strings.ReplaceAll(fmt.Sprint(node.payload), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			continue
		}
		for _, child := range []*Node[T]{node.left, node.right} {
			if child == nil {
				empty++
				fmt.Fprintf(&nodelist, "\"e%d\" %s;\n", empty, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"e%d\";\n", ID, empty)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
	}
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=\"#CCDDFF\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
