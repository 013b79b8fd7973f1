package main

import (
	"github.com/segmentio/bst/container/tree"
	"github.com/xlab/treeprint"
)

// renderTree draws t with the right subtree of each node above its left
// subtree, tagging children with R or L so single children are unambiguous.
func renderTree(t *tree.Tree[int]) string {
	root := t.Root()
	if root == nil {
		return "(empty)\n"
	}
	printer := treeprint.NewWithRoot(root.Value())
	walkTree(printer, root)
	return printer.String()
}

func walkTree(branch treeprint.Tree, n *tree.Node[int]) {
	if right := n.Right(); right != nil {
		walkTree(branch.AddMetaBranch("R", right.Value()), right)
	}
	if left := n.Left(); left != nil {
		walkTree(branch.AddMetaBranch("L", left.Value()), left)
	}
}
