package validator

import (
	"strconv"
	"strings"
)

// Node is one branch of a validation result. It is one of *FieldNode,
// *StructNode or *ListNode. Nodes only exist when they hold at least one
// violation.
type Node interface {
	node()
}

// FieldNode holds the failed rules of a scalar field, in evaluation order.
type FieldNode struct {
	Violations []Violation
}

// StructNode holds the failing fields of a record, in declaration order.
// The root of a validation result is a *StructNode and implements error.
type StructNode struct {
	Fields []StructField
}

// ListNode holds the failing elements of a list field, in index order.
type ListNode struct {
	Items []ListItem
}

type StructField struct {
	Name string
	Node Node
}

type ListItem struct {
	Index int
	Node  Node
}

func (*FieldNode) node()  {}
func (*StructNode) node() {}
func (*ListNode) node()   {}

// Leaf is a failing scalar field addressed by its full path.
type Leaf struct {
	Path       string
	Violations []Violation
}

// Leaves returns every failing scalar field in depth-first declaration order.
func (n *StructNode) Leaves() []Leaf {
	var out []Leaf
	collectLeaves(n, "", &out)
	return out
}

func collectLeaves(n Node, path string, out *[]Leaf) {
	switch n := n.(type) {
	case *FieldNode:
		*out = append(*out, Leaf{Path: path, Violations: n.Violations})
	case *StructNode:
		for _, f := range n.Fields {
			collectLeaves(f.Node, JoinField(path, f.Name), out)
		}
	case *ListNode:
		for _, item := range n.Items {
			collectLeaves(item.Node, JoinIndex(path, item.Index), out)
		}
	}
}

// JoinField appends a field name to a dotted path.
func JoinField(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// JoinIndex appends a list index to a path.
func JoinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func (n *StructNode) Error() string {
	leaves := n.Leaves()
	if len(leaves) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, leaf := range leaves {
		for _, v := range leaf.Violations {
			parts = append(parts, leaf.Path+": "+v.Message)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Paths lists the failing field paths in report order.
func (n *StructNode) Paths() []string {
	leaves := n.Leaves()
	paths := make([]string, len(leaves))
	for i, leaf := range leaves {
		paths[i] = leaf.Path
	}
	return paths
}
