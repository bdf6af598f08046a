package interpreter

import (
	"fmt"

	"github.com/vroomlang/vroom/internal/syntax"
)

type classType int

const (
	classNone classType = iota
	classPlain
	classSub
)

// Checker walks the tree before execution and rejects placement errors
// the parser can't see: this/super outside a method, super without a
// parent class, return at top level, shadowing in the same scope.
type Checker struct {
	scopes       []map[string]bool
	currentClass classType
	inMethod     bool
	checkErr     error
}

func NewChecker() *Checker {
	return &Checker{
		scopes: make([]map[string]bool, 0),
	}
}

func (c *Checker) GetError() error {
	return c.checkErr
}

func (c *Checker) Check(stmts []syntax.Stmt) {
	if err := c.checkStmts(stmts); err != nil {
		c.checkErr = err
	}
}

func (c *Checker) checkStmts(statements []syntax.Stmt) error {
	for _, stmt := range statements {
		if err := stmt.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkExpr(expr syntax.Expr) syntax.Result {
	return expr.Accept(c)
}

func (c *Checker) beginScope() {
	newScope := make(map[string]bool)
	c.scopes = append(c.scopes, newScope)
}

func (c *Checker) endScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *Checker) declare(name syntax.Token) error {
	if len(c.scopes) == 0 {
		return nil
	}
	scope := c.scopes[len(c.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		return fmt.Errorf("re-declare variable [%s]", name.Lexeme)
	}
	scope[name.Lexeme] = false
	return nil
}

func (c *Checker) define(name syntax.Token) {
	if len(c.scopes) == 0 {
		return
	}
	scope := c.scopes[len(c.scopes)-1]
	scope[name.Lexeme] = true
}

func (c *Checker) peek() map[string]bool {
	if len(c.scopes) == 0 {
		panic("No scopes")
	}
	return c.scopes[len(c.scopes)-1]
}

func (c *Checker) VisitBlockStmt(stmt *syntax.Block) error {
	c.beginScope()
	if err := c.checkStmts(stmt.Statements); err != nil {
		return err
	}
	c.endScope()
	return nil
}

func (c *Checker) VisitClassStmt(stmt *syntax.Class) error {
	if err := c.declare(stmt.Name); err != nil {
		return err
	}
	c.define(stmt.Name)

	enclosingClass := c.currentClass
	c.currentClass = classPlain
	if !stmt.Parent.IsEmpty() {
		if stmt.Parent.Lexeme == stmt.Name.Lexeme {
			return fmt.Errorf("class [%s] can't inherit from itself", stmt.Name.Lexeme)
		}
		c.currentClass = classSub
	}
	defer func() { c.currentClass = enclosingClass }()

	for _, method := range stmt.Methods {
		if err := c.checkMethod(method); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkMethod(method *syntax.Method) error {
	enclosingMethod := c.inMethod
	c.inMethod = true
	defer func() { c.inMethod = enclosingMethod }()

	c.beginScope()
	defer c.endScope()
	for _, param := range method.Params {
		if err := c.declare(param); err != nil {
			return err
		}
		c.define(param)
	}
	return c.checkStmts(method.Body)
}

func (c *Checker) VisitExpressionStmt(stmt *syntax.Expression) error {
	result := c.checkExpr(stmt.Expression)
	if result.Err != nil {
		return result.Err
	}
	return nil
}

func (c *Checker) VisitPrintStmt(stmt *syntax.Print) error {
	result := c.checkExpr(stmt.Expression)
	if result.Err != nil {
		return result.Err
	}
	return nil
}

func (c *Checker) VisitReturnStmt(stmt *syntax.Return) error {
	if !c.inMethod {
		return fmt.Errorf("can't return outside of a method, at line %d", stmt.Keyword.Line)
	}
	if stmt.Value != nil {
		result := c.checkExpr(stmt.Value)
		if result.Err != nil {
			return result.Err
		}
	}
	return nil
}

func (c *Checker) VisitVarStmt(stmt *syntax.Var) error {
	if err := c.declare(stmt.Name); err != nil {
		return err
	}
	if stmt.Initializer != nil {
		result := c.checkExpr(stmt.Initializer)
		if result.Err != nil {
			return result.Err
		}
	}
	c.define(stmt.Name)
	return nil
}

func (c *Checker) VisitAssignExpr(expr *syntax.Assign) syntax.Result {
	return c.checkExpr(expr.Value)
}

func (c *Checker) VisitBinaryExpr(expr *syntax.Binary) syntax.Result {
	result := c.checkExpr(expr.Left)
	if result.Err != nil {
		return result
	}
	return c.checkExpr(expr.Right)
}

func (c *Checker) VisitCallExpr(expr *syntax.Call) syntax.Result {
	result := c.checkExpr(expr.Callee)
	if result.Err != nil {
		return result
	}
	return c.checkExprs(expr.Arguments)
}

func (c *Checker) VisitGetExpr(expr *syntax.Get) syntax.Result {
	return c.checkExpr(expr.Object)
}

func (c *Checker) VisitGroupingExpr(expr *syntax.Grouping) syntax.Result {
	return c.checkExpr(expr.Expression)
}

func (c *Checker) VisitLiteralExpr(expr *syntax.Literal) syntax.Result {
	return syntax.Result{}
}

func (c *Checker) VisitSetExpr(expr *syntax.Set) syntax.Result {
	result := c.checkExpr(expr.Object)
	if result.Err != nil {
		return result
	}
	return c.checkExpr(expr.Value)
}

func (c *Checker) VisitSuperExpr(expr *syntax.Super) syntax.Result {
	if c.currentClass == classNone {
		return syntax.Result{
			Err: fmt.Errorf("can't use 'super' outside of a class, at line %d", expr.Keyword.Line),
		}
	}
	if c.currentClass == classPlain {
		return syntax.Result{
			Err: fmt.Errorf("can't use 'super' in a class with no parent class, at line %d", expr.Keyword.Line),
		}
	}
	return c.checkExprs(expr.Arguments)
}

func (c *Checker) VisitThisExpr(expr *syntax.This) syntax.Result {
	if !c.inMethod {
		return syntax.Result{
			Err: fmt.Errorf("can't use 'this' outside of a method, at line %d", expr.Keyword.Line),
		}
	}
	return syntax.Result{}
}

func (c *Checker) VisitVariableExpr(expr *syntax.Variable) syntax.Result {
	if len(c.scopes) > 0 {
		if initialized, ok := c.peek()[expr.Name.Lexeme]; ok && !initialized {
			return syntax.Result{
				Err: fmt.Errorf("can't read local variable [%s] in its own initializer", expr.Name.Lexeme),
			}
		}
	}
	return syntax.Result{}
}

func (c *Checker) checkExprs(exprs []syntax.Expr) syntax.Result {
	for _, expr := range exprs {
		result := c.checkExpr(expr)
		if result.Err != nil {
			return result
		}
	}
	return syntax.Result{}
}
