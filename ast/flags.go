package ast

import "strings"

// Flags holds structural modifiers: bits that change the shape of a
// construct rather than its runtime meaning.
type Flags uint32

const (
	FlagDistinct Flags = 1 << iota
	FlagAll
	FlagHasAlias
	FlagIfNotExists
	FlagIfExists
	FlagCascade
	FlagRestrict
	FlagOrReplace
	FlagTemporary
	FlagUnique
	FlagRecursive
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

var flagNames = []struct {
	bit  Flags
	name string
}{
	{FlagDistinct, "Distinct"}, {FlagAll, "All"}, {FlagHasAlias, "HasAlias"},
	{FlagIfNotExists, "IfNotExists"}, {FlagIfExists, "IfExists"},
	{FlagCascade, "Cascade"}, {FlagRestrict, "Restrict"},
	{FlagOrReplace, "OrReplace"}, {FlagTemporary, "Temporary"},
	{FlagUnique, "Unique"}, {FlagRecursive, "Recursive"},
}

// String renders the set bits as a "|"-joined list, for debug dumps.
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.bit) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// SemanticFlags holds semantic modifiers consumed by downstream analysis:
// bits that change meaning rather than shape.
type SemanticFlags uint32

const (
	// FlagNot marks the NOT-prefix on EXISTS/IN/LIKE/BETWEEN. It is set on
	// the EXISTS/IN/LIKE/BETWEEN node itself rather than wrapping it in a
	// synthetic unary-NOT node, per spec.md §4.7.
	FlagNot SemanticFlags = 1 << iota
	FlagDesc
	FlagNullsFirst
	FlagNullsLast
	FlagIsWindowFunc
)

func (f SemanticFlags) Has(bit SemanticFlags) bool { return f&bit != 0 }

var semanticFlagNames = []struct {
	bit  SemanticFlags
	name string
}{
	{FlagNot, "Not"}, {FlagDesc, "Desc"}, {FlagNullsFirst, "NullsFirst"},
	{FlagNullsLast, "NullsLast"}, {FlagIsWindowFunc, "IsWindowFunc"},
}

// String renders the set bits as a "|"-joined list, for debug dumps.
func (f SemanticFlags) String() string {
	var parts []string
	for _, fn := range semanticFlagNames {
		if f.Has(fn.bit) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ContextHint snapshots the syntactic context an identifier or expression
// was parsed in. It is informational only: the parser never branches on
// it, per the design note that the context stack must not influence
// grammar decisions.
type ContextHint uint8

const (
	ContextUnknown ContextHint = iota
	ContextSelectList
	ContextFromClause
	ContextWhereClause
	ContextGroupByClause
	ContextHavingClause
	ContextOrderByClause
	ContextJoinCondition
	ContextCaseExpression
	ContextFunctionArg
	ContextSubquery
	ContextWindowSpec
	ContextSetClause
	ContextReturning
)

var contextNames = [...]string{
	"Unknown", "SelectList", "FromClause", "WhereClause", "GroupByClause",
	"HavingClause", "OrderByClause", "JoinCondition", "CaseExpression",
	"FunctionArg", "Subquery", "WindowSpec", "SetClause", "Returning",
}

func (c ContextHint) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return "Unknown"
}

// FrameBoundKind distinguishes window-frame bound shapes that otherwise
// look alike (e.g. "3 PRECEDING" vs "3 FOLLOWING"). Stored in a FrameBound
// node's Secondary field per spec.md §4.7.
type FrameBoundKind string

const (
	BoundPreceding          FrameBoundKind = "PRECEDING"
	BoundFollowing          FrameBoundKind = "FOLLOWING"
	BoundCurrentRow         FrameBoundKind = "CURRENT ROW"
	BoundUnboundedPreceding FrameBoundKind = "UNBOUNDED PRECEDING"
	BoundUnboundedFollowing FrameBoundKind = "UNBOUNDED FOLLOWING"
)
