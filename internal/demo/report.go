// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/olekukonko/tablewriter"

	"github.com/gviegas/stage"
	"github.com/gviegas/stage/node"
)

var rootStyle = lipgloss.NewStyle().Bold(true)

// Tree renders both graphs of s.
func Tree(s *stage.Scene) string {
	t3 := tree.Root(rootStyle.Render(s.Root3().Name))
	for _, sub := range s.Root3().Children() {
		t3.Child(tree3(sub))
	}
	t2 := tree.Root(rootStyle.Render(s.Root2().Name))
	for _, sub := range s.Root2().Children() {
		t2.Child(tree2(sub))
	}
	return t3.String() + "\n" + t2.String()
}

func tree3(n node.Node3) any {
	subs := n.Children()
	if len(subs) == 0 {
		return name3(n)
	}
	t := tree.Root(name3(n))
	for _, sub := range subs {
		t.Child(tree3(sub))
	}
	return t
}

func tree2(n node.Node2) any {
	subs := n.Children()
	if len(subs) == 0 {
		return name2(n)
	}
	t := tree.Root(name2(n))
	for _, sub := range subs {
		t.Child(tree2(sub))
	}
	return t
}

// Report writes stats to w as a table.
func Report(w io.Writer, stats []FrameStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"Frame", "Traversed", "3D draws", "2D draws", "Lights", "Time"})
	for _, st := range stats {
		table.Append([]string{
			fmt.Sprintf("%d", st.Frame),
			fmt.Sprintf("%d", st.Traversed),
			fmt.Sprintf("%d", st.Drawn3),
			fmt.Sprintf("%d", st.Drawn2),
			fmt.Sprintf("%d", st.Lights),
			st.Time.String(),
		})
	}
	table.Render()
}
