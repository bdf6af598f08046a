package syntax

// Result carries an expression value or the error that produced it.
type Result struct {
	Value any
	Err   error
}

type Expr interface {
	Accept(v ExprVisitor) Result
}

type Stmt interface {
	Accept(v StmtVisitor) error
}

type ExprVisitor interface {
	VisitAssignExpr(expr *Assign) Result
	VisitBinaryExpr(expr *Binary) Result
	VisitCallExpr(expr *Call) Result
	VisitGetExpr(expr *Get) Result
	VisitGroupingExpr(expr *Grouping) Result
	VisitLiteralExpr(expr *Literal) Result
	VisitSetExpr(expr *Set) Result
	VisitSuperExpr(expr *Super) Result
	VisitThisExpr(expr *This) Result
	VisitVariableExpr(expr *Variable) Result
}

type StmtVisitor interface {
	VisitBlockStmt(stmt *Block) error
	VisitClassStmt(stmt *Class) error
	VisitExpressionStmt(stmt *Expression) error
	VisitPrintStmt(stmt *Print) error
	VisitReturnStmt(stmt *Return) error
	VisitVarStmt(stmt *Var) error
}

type Assign struct {
	Name  Token
	Value Expr
}

func NewAssign(name Token, value Expr) *Assign {
	return &Assign{Name: name, Value: value}
}

func (e *Assign) Accept(v ExprVisitor) Result {
	return v.VisitAssignExpr(e)
}

type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func NewBinary(left Expr, operator Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: operator, Right: right}
}

func (e *Binary) Accept(v ExprVisitor) Result {
	return v.VisitBinaryExpr(e)
}

type Call struct {
	Callee Expr
	// closing parenthesis, for error reporting
	Paren     Token
	Arguments []Expr
}

func NewCall(callee Expr, paren Token, arguments []Expr) *Call {
	return &Call{Callee: callee, Paren: paren, Arguments: arguments}
}

func (e *Call) Accept(v ExprVisitor) Result {
	return v.VisitCallExpr(e)
}

type Get struct {
	Object Expr
	Name   Token
}

func NewGet(object Expr, name Token) *Get {
	return &Get{Object: object, Name: name}
}

func (e *Get) Accept(v ExprVisitor) Result {
	return v.VisitGetExpr(e)
}

type Grouping struct {
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{Expression: expression}
}

func (e *Grouping) Accept(v ExprVisitor) Result {
	return v.VisitGroupingExpr(e)
}

type Literal struct {
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{Value: value}
}

func (e *Literal) Accept(v ExprVisitor) Result {
	return v.VisitLiteralExpr(e)
}

type Set struct {
	Object Expr
	Name   Token
	Value  Expr
}

func NewSet(object Expr, name Token, value Expr) *Set {
	return &Set{Object: object, Name: name, Value: value}
}

func (e *Set) Accept(v ExprVisitor) Result {
	return v.VisitSetExpr(e)
}

// Super is always a full delegated call: "super" "." method "(" args ")".
type Super struct {
	Keyword   Token
	Method    Token
	Arguments []Expr
}

func NewSuper(keyword, method Token, arguments []Expr) *Super {
	return &Super{Keyword: keyword, Method: method, Arguments: arguments}
}

func (e *Super) Accept(v ExprVisitor) Result {
	return v.VisitSuperExpr(e)
}

type This struct {
	Keyword Token
}

func NewThis(keyword Token) *This {
	return &This{Keyword: keyword}
}

func (e *This) Accept(v ExprVisitor) Result {
	return v.VisitThisExpr(e)
}

type Variable struct {
	Name Token
}

func NewVariable(name Token) *Variable {
	return &Variable{Name: name}
}

func (e *Variable) Accept(v ExprVisitor) Result {
	return v.VisitVariableExpr(e)
}

type Block struct {
	Statements []Stmt
}

func NewBlock(statements []Stmt) *Block {
	return &Block{Statements: statements}
}

func (s *Block) Accept(v StmtVisitor) error {
	return v.VisitBlockStmt(s)
}

// Method is a method declaration inside a class body. It is not a
// standalone statement; it only ever appears under Class.
type Method struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

func NewMethod(name Token, params []Token, body []Stmt) *Method {
	return &Method{Name: name, Params: params, Body: body}
}

type Class struct {
	Name Token
	// zero token when the class has no parent
	Parent  Token
	Methods []*Method
}

func NewClass(name, parent Token, methods []*Method) *Class {
	return &Class{Name: name, Parent: parent, Methods: methods}
}

func (s *Class) Accept(v StmtVisitor) error {
	return v.VisitClassStmt(s)
}

type Expression struct {
	Expression Expr
}

func NewExpression(expression Expr) *Expression {
	return &Expression{Expression: expression}
}

func (s *Expression) Accept(v StmtVisitor) error {
	return v.VisitExpressionStmt(s)
}

type Print struct {
	Expression Expr
}

func NewPrint(expression Expr) *Print {
	return &Print{Expression: expression}
}

func (s *Print) Accept(v StmtVisitor) error {
	return v.VisitPrintStmt(s)
}

type Return struct {
	Keyword Token
	Value   Expr
}

func NewReturn(keyword Token, value Expr) *Return {
	return &Return{Keyword: keyword, Value: value}
}

func (s *Return) Accept(v StmtVisitor) error {
	return v.VisitReturnStmt(s)
}

type Var struct {
	Name        Token
	Initializer Expr
}

func NewVar(name Token, initializer Expr) *Var {
	return &Var{Name: name, Initializer: initializer}
}

func (s *Var) Accept(v StmtVisitor) error {
	return v.VisitVarStmt(s)
}
