// Package ast defines the single AST node type the parser builds and the
// arena-backed factory that allocates it. Every SQL construct — statement,
// clause, expression, literal, reference, list — is represented by one
// Node with a Kind tag selecting which other fields are meaningful, per
// the "single concrete node struct" design described in the parsing
// engine's design notes.
package ast

// Kind tags the category of construct a Node represents.
type Kind uint16

const (
	KindInvalid Kind = iota

	// Statements
	KindSelectStmt
	KindInsertStmt
	KindUpdateStmt
	KindDeleteStmt
	KindCreateTableStmt
	KindCreateIndexStmt
	KindCreateViewStmt
	KindCreateTriggerStmt
	KindCreateSchemaStmt
	KindAlterTableStmt
	KindDropStmt
	KindTruncateStmt
	KindTransactionStmt
	KindValuesStmt
	KindExplainStmt
	KindUtilityStmt // SET, VACUUM, ANALYZE, ATTACH, DETACH, REINDEX, PRAGMA
	KindUnionStmt    // set-operation tail: UNION/INTERSECT/EXCEPT wraps two arms

	// Clauses
	KindWithClause
	KindCTEDefinition
	KindSelectList
	KindSelectItem
	KindFromClause
	KindWhereClause
	KindGroupByClause
	KindHavingClause
	KindOrderByClause
	KindOrderByItem
	KindLimitClause
	KindWindowClause
	KindNamedWindow
	KindReturningClause
	KindOnConflictClause
	KindUsingClause
	KindSetClause
	KindAssignment
	KindGroupingSet
	KindCube
	KindRollup

	// FROM / JOIN
	KindTableRef
	KindSubqueryRef
	KindJoinClause

	// Expressions
	KindBinaryExpr
	KindUnaryExpr
	KindColumnRef
	KindStar
	KindFunctionCall
	KindCaseExpr
	KindWhenClause
	KindCastExpr
	KindExtractExpr
	KindExistsExpr
	KindInExpr
	KindBetweenExpr
	KindLikeExpr
	KindIsNullExpr
	KindIsDistinctExpr
	KindSubqueryExpr
	KindRowExpr
	KindArrayExpr
	KindIntervalExpr
	KindWindowSpec
	KindFrameClause
	KindFrameBound
	KindParenExpr

	// Literals / references
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindDateTimeLiteral
	KindIdentifier

	// DDL components
	KindColumnDef
	KindColumnConstraint
	KindTableConstraint
	KindDataType
	KindIndexColumn
	KindAlterAction

	// Misc
	KindList // generic ordered list of children with no semantics of its own
	KindRoot
)

var kindNames = map[Kind]string{
	KindInvalid:           "Invalid",
	KindSelectStmt:        "SelectStmt",
	KindInsertStmt:        "InsertStmt",
	KindUpdateStmt:        "UpdateStmt",
	KindDeleteStmt:        "DeleteStmt",
	KindCreateTableStmt:   "CreateTableStmt",
	KindCreateIndexStmt:   "CreateIndexStmt",
	KindCreateViewStmt:    "CreateViewStmt",
	KindCreateTriggerStmt: "CreateTriggerStmt",
	KindCreateSchemaStmt:  "CreateSchemaStmt",
	KindAlterTableStmt:    "AlterTableStmt",
	KindDropStmt:          "DropStmt",
	KindTruncateStmt:      "TruncateStmt",
	KindTransactionStmt:   "TransactionStmt",
	KindValuesStmt:        "ValuesStmt",
	KindExplainStmt:       "ExplainStmt",
	KindUtilityStmt:       "UtilityStmt",
	KindUnionStmt:         "UnionStmt",
	KindWithClause:        "WithClause",
	KindCTEDefinition:     "CTEDefinition",
	KindSelectList:        "SelectList",
	KindSelectItem:        "SelectItem",
	KindFromClause:        "FromClause",
	KindWhereClause:       "WhereClause",
	KindGroupByClause:     "GroupByClause",
	KindHavingClause:      "HavingClause",
	KindOrderByClause:     "OrderByClause",
	KindOrderByItem:       "OrderByItem",
	KindLimitClause:       "LimitClause",
	KindWindowClause:      "WindowClause",
	KindNamedWindow:       "NamedWindow",
	KindReturningClause:   "ReturningClause",
	KindOnConflictClause:  "OnConflictClause",
	KindUsingClause:       "UsingClause",
	KindSetClause:         "SetClause",
	KindAssignment:        "Assignment",
	KindGroupingSet:       "GroupingSet",
	KindCube:              "Cube",
	KindRollup:            "Rollup",
	KindTableRef:          "TableRef",
	KindSubqueryRef:       "SubqueryRef",
	KindJoinClause:        "JoinClause",
	KindBinaryExpr:        "BinaryExpr",
	KindUnaryExpr:         "UnaryExpr",
	KindColumnRef:         "ColumnRef",
	KindStar:              "Star",
	KindFunctionCall:      "FunctionCall",
	KindCaseExpr:          "CaseExpr",
	KindWhenClause:        "WhenClause",
	KindCastExpr:          "CastExpr",
	KindExtractExpr:       "ExtractExpr",
	KindExistsExpr:        "ExistsExpr",
	KindInExpr:            "InExpr",
	KindBetweenExpr:       "BetweenExpr",
	KindLikeExpr:          "LikeExpr",
	KindIsNullExpr:        "IsNullExpr",
	KindIsDistinctExpr:    "IsDistinctExpr",
	KindSubqueryExpr:      "SubqueryExpr",
	KindRowExpr:           "RowExpr",
	KindArrayExpr:         "ArrayExpr",
	KindIntervalExpr:      "IntervalExpr",
	KindWindowSpec:        "WindowSpec",
	KindFrameClause:       "FrameClause",
	KindFrameBound:        "FrameBound",
	KindParenExpr:         "ParenExpr",
	KindIntegerLiteral:    "IntegerLiteral",
	KindFloatLiteral:      "FloatLiteral",
	KindStringLiteral:     "StringLiteral",
	KindBooleanLiteral:    "BooleanLiteral",
	KindNullLiteral:       "NullLiteral",
	KindDateTimeLiteral:   "DateTimeLiteral",
	KindIdentifier:        "Identifier",
	KindColumnDef:         "ColumnDef",
	KindColumnConstraint:  "ColumnConstraint",
	KindTableConstraint:   "TableConstraint",
	KindDataType:          "DataType",
	KindIndexColumn:       "IndexColumn",
	KindAlterAction:       "AlterAction",
	KindList:              "List",
	KindRoot:              "Root",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UnknownKind"
}
