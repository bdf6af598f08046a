package syntax

import (
	"fmt"
	"strings"
)

// AstPrinter renders the tree in a parenthesized debug form.
// Statement visits return error by contract, so the rendered string of
// the most recent statement travels through last.
type AstPrinter struct {
	last string
}

func (a *AstPrinter) Print(expr Expr) string {
	result := expr.Accept(a)
	return result.Value.(string)
}

func (a *AstPrinter) PrintStmts(stmts []Stmt) string {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		if err := stmt.Accept(a); err == nil {
			lines = append(lines, a.last)
		}
	}
	return strings.Join(lines, "\n")
}

func (a *AstPrinter) VisitBlockStmt(stmt *Block) error {
	parts := make([]string, 0, len(stmt.Statements))
	for _, inner := range stmt.Statements {
		if err := inner.Accept(a); err != nil {
			return err
		}
		parts = append(parts, a.last)
	}
	a.last = "(block " + strings.Join(parts, " ") + ")"
	return nil
}

func (a *AstPrinter) VisitClassStmt(stmt *Class) error {
	var builder strings.Builder
	builder.WriteString("(class " + stmt.Name.Lexeme)
	if !stmt.Parent.IsEmpty() {
		builder.WriteString(" < " + stmt.Parent.Lexeme)
	}
	for _, method := range stmt.Methods {
		builder.WriteString(" " + a.printMethod(method))
	}
	builder.WriteString(")")
	a.last = builder.String()
	return nil
}

func (a *AstPrinter) printMethod(method *Method) string {
	var builder strings.Builder
	builder.WriteString("(method " + method.Name.Lexeme + " (params")
	for _, param := range method.Params {
		builder.WriteString(" " + param.Lexeme)
	}
	builder.WriteString(")")
	for _, stmt := range method.Body {
		if err := stmt.Accept(a); err == nil {
			builder.WriteString(" " + a.last)
		}
	}
	builder.WriteString(")")
	return builder.String()
}

func (a *AstPrinter) VisitExpressionStmt(stmt *Expression) error {
	a.last = "(expr " + a.Print(stmt.Expression) + ")"
	return nil
}

func (a *AstPrinter) VisitPrintStmt(stmt *Print) error {
	a.last = "(print " + a.Print(stmt.Expression) + ")"
	return nil
}

func (a *AstPrinter) VisitReturnStmt(stmt *Return) error {
	if stmt.Value == nil {
		a.last = "(return)"
		return nil
	}
	a.last = "(return " + a.Print(stmt.Value) + ")"
	return nil
}

func (a *AstPrinter) VisitVarStmt(stmt *Var) error {
	if stmt.Initializer == nil {
		a.last = "(var " + stmt.Name.Lexeme + ")"
		return nil
	}
	a.last = "(var " + stmt.Name.Lexeme + " " + a.Print(stmt.Initializer) + ")"
	return nil
}

func (a *AstPrinter) VisitAssignExpr(expr *Assign) Result {
	return Result{Value: a.parenthesize("= "+expr.Name.Lexeme, expr.Value)}
}

func (a *AstPrinter) VisitBinaryExpr(expr *Binary) Result {
	return Result{Value: a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)}
}

func (a *AstPrinter) VisitCallExpr(expr *Call) Result {
	return Result{Value: a.parenthesize("call", append([]Expr{expr.Callee}, expr.Arguments...)...)}
}

func (a *AstPrinter) VisitGetExpr(expr *Get) Result {
	return Result{Value: a.parenthesize(". "+expr.Name.Lexeme, expr.Object)}
}

func (a *AstPrinter) VisitGroupingExpr(expr *Grouping) Result {
	return Result{Value: a.parenthesize("group", expr.Expression)}
}

func (a *AstPrinter) VisitLiteralExpr(expr *Literal) Result {
	if expr.Value == nil {
		return Result{Value: "nil"}
	}
	if s, ok := expr.Value.(string); ok {
		return Result{Value: fmt.Sprintf("%q", s)}
	}
	return Result{Value: fmt.Sprintf("%v", expr.Value)}
}

func (a *AstPrinter) VisitSetExpr(expr *Set) Result {
	return Result{Value: a.parenthesize("= (. "+expr.Name.Lexeme+")", expr.Object, expr.Value)}
}

func (a *AstPrinter) VisitSuperExpr(expr *Super) Result {
	return Result{Value: a.parenthesize("super "+expr.Method.Lexeme, expr.Arguments...)}
}

func (a *AstPrinter) VisitThisExpr(expr *This) Result {
	return Result{Value: "this"}
}

func (a *AstPrinter) VisitVariableExpr(expr *Variable) Result {
	return Result{Value: expr.Name.Lexeme}
}

func (a *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var builder strings.Builder

	builder.WriteString("(" + name)
	for _, expr := range exprs {
		builder.WriteString(" ")
		builder.WriteString(a.Print(expr))
	}
	builder.WriteString(")")

	return builder.String()
}
