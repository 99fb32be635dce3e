package ast

import (
	"strconv"
	"strings"
)

// Dump renders an indented tree view of n, one node per line, for CLI
// -dump output and test failure messages. It is not used on any parse
// path; tests and cmd/sqlfrontctl are its only callers.
func Dump(n *Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())
	if n.Primary != "" {
		sb.WriteString(" primary=")
		sb.WriteString(strconv.Quote(n.Primary))
	}
	if n.Secondary != "" {
		sb.WriteString(" secondary=")
		sb.WriteString(strconv.Quote(n.Secondary))
	}
	if n.Flags != 0 {
		sb.WriteString(" flags=")
		sb.WriteString(n.Flags.String())
	}
	if n.SemanticFlags != 0 {
		sb.WriteString(" semantic=")
		sb.WriteString(n.SemanticFlags.String())
	}
	if n.Context != ContextUnknown {
		sb.WriteString(" context=")
		sb.WriteString(n.Context.String())
	}
	sb.WriteString("\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(sb, c, depth+1)
	}
}
