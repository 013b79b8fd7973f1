package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/segmentio/bst/container/tree"
	"github.com/urfave/cli/v2"
)

func runDemo(cctx *cli.Context) error {
	values, err := randomValues(cctx.Int("size"), cctx.Int("max"), cctx.Int64("seed"))
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	printTree := cctx.Bool("print-tree")

	t := tree.New(values...)
	slog.Debug("built tree", "values", values, "len", t.Len(), "height", t.Height())

	printBalance(w, "Initial tree balance status", t)
	if printTree {
		fmt.Fprint(w, renderTree(t))
	}
	if err := printTraversals(w, t); err != nil {
		return err
	}

	for _, v := range cctx.IntSlice("unbalance") {
		t.Insert(v)
	}
	slog.Debug("inserted values", "values", cctx.IntSlice("unbalance"), "len", t.Len(), "height", t.Height())
	printBalance(w, "Tree balance status after adding large numbers", t)
	if printTree {
		fmt.Fprint(w, renderTree(t))
	}

	t.Rebalance()
	slog.Debug("rebalanced tree", "len", t.Len(), "height", t.Height())
	printBalance(w, "Tree balance status after rebalancing", t)
	if printTree {
		fmt.Fprint(w, renderTree(t))
	}
	return printTraversals(w, t)
}

func runBuild(cctx *cli.Context) error {
	values, err := parseValues(cctx.Args().Slice())
	if err != nil {
		return err
	}
	w := cctx.App.Writer

	t := tree.New(values...)
	slog.Debug("built tree", "values", values, "len", t.Len(), "height", t.Height())

	fmt.Fprint(w, renderTree(t))
	printBalance(w, "Tree balance status", t)
	return printTraversals(w, t)
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid tree value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func printBalance(w io.Writer, msg string, t *tree.Tree[int]) {
	status := "Unbalanced"
	if t.IsBalanced() {
		status = "Balanced"
	}
	fmt.Fprintf(w, "%s: %s\n", msg, status)
}

func printTraversals(w io.Writer, t *tree.Tree[int]) error {
	for _, order := range []struct {
		name string
		walk func(tree.Visitor[int]) error
	}{
		{"Level Order", t.LevelOrder},
		{"Pre Order", t.PreOrder},
		{"Post Order", t.PostOrder},
		{"In Order", t.InOrder},
	} {
		values := make([]string, 0, t.Len())
		err := order.walk(func(n *tree.Node[int]) {
			values = append(values, strconv.Itoa(n.Value()))
		})
		if err != nil {
			return fmt.Errorf("%s traversal: %w", order.name, err)
		}
		fmt.Fprintf(w, "%s: %s\n", order.name, strings.Join(values, " "))
	}
	return nil
}
