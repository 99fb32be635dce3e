package parser

import "github.com/kynessa/sqlfront/ast"

// validate walks a completed AST checking the cross-cutting invariants
// that are awkward or impossible to enforce locally at parse time
// (spec.md §3). Most shape invariants — ON/USING exclusivity, CUBE/
// ROLLUP/GROUPING SETS reachable only under GROUP BY, OVER reachable
// only on callable nodes — are enforced structurally by the grammar
// itself (the relevant productions are the only caller of the relevant
// parse functions) and need no second check here.
func (p *Parser) validate(root *ast.Node) error {
	if root == nil {
		return nil
	}
	if p.parenDepth != 0 {
		return p.errorf(ErrUnbalancedParens, "unbalanced parentheses")
	}
	return p.validateNode(root)
}

func (p *Parser) validateNode(n *ast.Node) error {
	switch n.Kind {
	case ast.KindSelectList:
		if n.ChildCount == 0 {
			return p.errorf(ErrMissingClause, "SELECT list must not be empty")
		}
	case ast.KindUnionStmt:
		if n.ChildCount < 2 {
			return p.errorf(ErrMissingClause, "set operation requires two arms")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !isSelectShaped(c) {
				return p.errorf(ErrValidationFailed, "set operation arm must be SELECT-shaped")
			}
		}
	case ast.KindWithClause:
		if err := p.validateCTENamesDistinct(n); err != nil {
			return err
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := p.validateNode(c); err != nil {
			return err
		}
	}
	return nil
}

// isSelectShaped reports whether n is something a set-operation arm is
// allowed to be: a SELECT, VALUES, or a nested set operation.
func isSelectShaped(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindSelectStmt, ast.KindValuesStmt, ast.KindUnionStmt:
		return true
	default:
		return false
	}
}

// validateCTENamesDistinct enforces that no two CTEs in the same WITH
// clause share a name — the one WITH-clause invariant the grammar
// cannot reject on its own, since nothing about parsing a second
// "name AS (...)" differs syntactically from the first.
func (p *Parser) validateCTENamesDistinct(with *ast.Node) error {
	seen := make(map[string]bool, with.ChildCount)
	for c := with.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind != ast.KindCTEDefinition {
			continue
		}
		name := c.Primary
		if seen[name] {
			return p.errorf(ErrValidationFailed, "duplicate CTE name %q", name)
		}
		seen[name] = true
	}
	return nil
}
