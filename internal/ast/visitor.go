package ast

// Visitor dispatches over the closed set of AST node variants. A visitor
// implementation supplies one handler per variant; embedding NoopVisitor
// gives every handler a do-nothing default so a caller can override only
// the variants it cares about.
type Visitor interface {
	VisitTopLevelModule(*TopLevelModule)
	VisitImport(*Import)
	VisitTemplateParameter(*TemplateParameter)
	VisitModule(*Module)
	VisitInterface(*Interface)
	VisitFunction(*Function)
	VisitEnum(*Enum)
	VisitEnumPart(*EnumPart)
	VisitBundle(*Bundle)
	VisitBundleMember(*BundleMember)

	VisitEmptyStatement(*EmptyStatement)
	VisitExpressionStatement(*ExpressionStatement)
	VisitBlockStatement(*BlockStatement)
	VisitIfStatement(*IfStatement)
	VisitForStatement(*ForStatement)
	VisitForStatementVariable(*ForStatementVariable)
	VisitMatchStatement(*MatchStatement)
	VisitMatchPart(*MatchPart)
	VisitReturnStatement(*ReturnStatement)
	VisitBreakStatement(*BreakStatement)
	VisitContinueStatement(*ContinueStatement)
	VisitVariableDecl(*VariableDecl)
	VisitVariableDeclGroup(*VariableDeclGroup)
	VisitTypeAliasStatement(*TypeAliasStatement)

	VisitIntegerLiteralExpr(*IntegerLiteralExpr)
	VisitScopedIdExpr(*ScopedIdExpr)
	VisitParenExpr(*ParenExpr)
	VisitListExpr(*ListExpr)
	VisitMemberExpr(*MemberExpr)
	VisitSliceExpr(*SliceExpr)
	VisitTemplateArg(*TemplateArg)
	VisitCallExpr(*CallExpr)
	VisitCastExpr(*CastExpr)
	VisitFillExpr(*FillExpr)
	VisitCatExpr(*CatExpr)
	VisitPopCountExpr(*PopCountExpr)
	VisitUnaryExpr(*UnaryExpr)
	VisitBinaryExpr(*BinaryExpr)
	VisitTernaryExpr(*TernaryExpr)
	VisitAssignExpr(*AssignExpr)

	VisitBitVectorTypeExpr(*BitVectorTypeExpr)
	VisitFlipTypeExpr(*FlipTypeExpr)
	VisitScopedTypeExpr(*ScopedTypeExpr)
	VisitTupleTypeExpr(*TupleTypeExpr)
	VisitMemoryTypeExpr(*MemoryTypeExpr)
	VisitFunctionTypeExpr(*FunctionTypeExpr)
	VisitTypeOfTypeExpr(*TypeOfTypeExpr)
}

// NoopVisitor implements Visitor with every method a no-op; embed it to
// pick only the handlers a particular pass needs.
type NoopVisitor struct{}

func (NoopVisitor) VisitTopLevelModule(*TopLevelModule)       {}
func (NoopVisitor) VisitImport(*Import)                       {}
func (NoopVisitor) VisitTemplateParameter(*TemplateParameter) {}
func (NoopVisitor) VisitModule(*Module)                       {}
func (NoopVisitor) VisitInterface(*Interface)                 {}
func (NoopVisitor) VisitFunction(*Function)                   {}
func (NoopVisitor) VisitEnum(*Enum)                           {}
func (NoopVisitor) VisitEnumPart(*EnumPart)                   {}
func (NoopVisitor) VisitBundle(*Bundle)                       {}
func (NoopVisitor) VisitBundleMember(*BundleMember)           {}

func (NoopVisitor) VisitEmptyStatement(*EmptyStatement)             {}
func (NoopVisitor) VisitExpressionStatement(*ExpressionStatement)   {}
func (NoopVisitor) VisitBlockStatement(*BlockStatement)             {}
func (NoopVisitor) VisitIfStatement(*IfStatement)                   {}
func (NoopVisitor) VisitForStatement(*ForStatement)                 {}
func (NoopVisitor) VisitForStatementVariable(*ForStatementVariable) {}
func (NoopVisitor) VisitMatchStatement(*MatchStatement)             {}
func (NoopVisitor) VisitMatchPart(*MatchPart)                       {}
func (NoopVisitor) VisitReturnStatement(*ReturnStatement)           {}
func (NoopVisitor) VisitBreakStatement(*BreakStatement)             {}
func (NoopVisitor) VisitContinueStatement(*ContinueStatement)       {}
func (NoopVisitor) VisitVariableDecl(*VariableDecl)                 {}
func (NoopVisitor) VisitVariableDeclGroup(*VariableDeclGroup)       {}
func (NoopVisitor) VisitTypeAliasStatement(*TypeAliasStatement)     {}

func (NoopVisitor) VisitIntegerLiteralExpr(*IntegerLiteralExpr) {}
func (NoopVisitor) VisitScopedIdExpr(*ScopedIdExpr)             {}
func (NoopVisitor) VisitParenExpr(*ParenExpr)                   {}
func (NoopVisitor) VisitListExpr(*ListExpr)                     {}
func (NoopVisitor) VisitMemberExpr(*MemberExpr)                 {}
func (NoopVisitor) VisitSliceExpr(*SliceExpr)                   {}
func (NoopVisitor) VisitTemplateArg(*TemplateArg)               {}
func (NoopVisitor) VisitCallExpr(*CallExpr)                     {}
func (NoopVisitor) VisitCastExpr(*CastExpr)                     {}
func (NoopVisitor) VisitFillExpr(*FillExpr)                     {}
func (NoopVisitor) VisitCatExpr(*CatExpr)                       {}
func (NoopVisitor) VisitPopCountExpr(*PopCountExpr)             {}
func (NoopVisitor) VisitUnaryExpr(*UnaryExpr)                   {}
func (NoopVisitor) VisitBinaryExpr(*BinaryExpr)                 {}
func (NoopVisitor) VisitTernaryExpr(*TernaryExpr)               {}
func (NoopVisitor) VisitAssignExpr(*AssignExpr)                 {}

func (NoopVisitor) VisitBitVectorTypeExpr(*BitVectorTypeExpr) {}
func (NoopVisitor) VisitFlipTypeExpr(*FlipTypeExpr)           {}
func (NoopVisitor) VisitScopedTypeExpr(*ScopedTypeExpr)       {}
func (NoopVisitor) VisitTupleTypeExpr(*TupleTypeExpr)         {}
func (NoopVisitor) VisitMemoryTypeExpr(*MemoryTypeExpr)       {}
func (NoopVisitor) VisitFunctionTypeExpr(*FunctionTypeExpr)   {}
func (NoopVisitor) VisitTypeOfTypeExpr(*TypeOfTypeExpr)       {}
