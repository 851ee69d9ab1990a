package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docserve"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	if deps.Tree == nil || len(deps.Tree.Children) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	printTree(deps.Stdout, deps.Tree, 0)
	return nil
}

func printTree(w io.Writer, node *docserve.TreeNode, depth int) {
	for _, child := range node.SortedChildren() {
		indent := strings.Repeat("  ", depth)
		if child.IsDir() {
			fmt.Fprintf(w, "%s%s/\n", indent, child.Name)
			printTree(w, child, depth+1)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, child.Name)
		}
	}
}
