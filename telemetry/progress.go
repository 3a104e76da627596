package telemetry

import "github.com/pterm/pterm"

// ReportImprovement prints a one-line, human-facing notice that a search
// found a better formula, in the spirit of the engine's progress-reporting
// result wrapper.
func ReportImprovement(score float64, rendered string) {
	pterm.Info.Printf("New result, score=%s for %q\n", pterm.Sprintf("%.6g", score), rendered)
}

// TreeNode is the minimal shape telemetry needs to render a search tree for
// debugging: a label and zero or more children. Package searchtree's Tree
// does not implement this itself (it would pull pterm into the core
// dependency surface); callers adapt a snapshot of their tree to it.
type TreeNode struct {
	Label    string
	Children []TreeNode
}

// RenderTree prints root as an indented tree using pterm's tree widget, for
// interactively inspecting the shape of a search in progress.
func RenderTree(root TreeNode) error {
	return pterm.DefaultTree.WithRoot(toPtermNode(root)).Render()
}

func toPtermNode(n TreeNode) pterm.TreeNode {
	children := make([]pterm.TreeNode, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, toPtermNode(c))
	}
	return pterm.TreeNode{Text: n.Label, Children: children}
}

// ProgressBar starts a pterm progress bar over total iterations, for the
// example harness to show search progress interactively. Callers must call
// Stop on the returned bar when the search finishes.
func ProgressBar(total int, title string) (*pterm.ProgressbarPrinter, error) {
	return pterm.DefaultProgressbar.WithTotal(total).WithTitle(title).Start()
}
