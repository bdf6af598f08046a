package interpreter

import (
	"fmt"
	"io"

	"github.com/vroomlang/vroom/internal/runtime"
	"github.com/vroomlang/vroom/internal/syntax"
)

// Interpreter executes parsed statements. Class declarations register
// into the runtime registry; calls route through the dispatcher.
type Interpreter struct {
	registry   *runtime.Registry
	dispatcher *runtime.Dispatcher
	env        *Environment
	out        io.Writer
	// context of the currently executing method, nil at top level
	call      *runtime.CallContext
	lastValue any
}

func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{
		registry:   runtime.NewRegistry(),
		dispatcher: runtime.NewDispatcher(),
		env:        NewEnvironment(nil),
		out:        out,
	}
}

func (a *Interpreter) Registry() *runtime.Registry {
	return a.registry
}

// LastValue is the value of the most recent expression statement.
func (a *Interpreter) LastValue() any {
	return a.lastValue
}

func (a *Interpreter) Interpret(stmts []syntax.Stmt) error {
	a.lastValue = nil
	for _, stmt := range stmts {
		if err := a.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Interpreter) execute(stmt syntax.Stmt) error {
	return stmt.Accept(a)
}

func (a *Interpreter) evaluate(expr syntax.Expr) syntax.Result {
	return expr.Accept(a)
}

func (a *Interpreter) VisitBlockStmt(stmt *syntax.Block) error {
	previousEnv := a.env
	a.env = NewEnvironment(previousEnv)
	defer func() {
		a.env = previousEnv
	}()
	for _, inner := range stmt.Statements {
		if err := a.execute(inner); err != nil {
			return err
		}
	}
	return nil
}

func (a *Interpreter) VisitClassStmt(stmt *syntax.Class) error {
	parent := ""
	if !stmt.Parent.IsEmpty() {
		parent = stmt.Parent.Lexeme
	}
	methods := make(map[string]runtime.Method)
	var initializer runtime.Method
	for _, decl := range stmt.Methods {
		method := NewScriptMethod(decl, a.env, a)
		if decl.Name.Lexeme == runtime.InitMethod {
			initializer = method
		} else {
			methods[decl.Name.Lexeme] = method
		}
	}
	class, err := a.registry.Define(stmt.Name.Lexeme, parent, methods, initializer)
	if err != nil {
		return err
	}
	return a.env.define(stmt.Name.Lexeme, class)
}

func (a *Interpreter) VisitExpressionStmt(stmt *syntax.Expression) error {
	result := a.evaluate(stmt.Expression)
	if result.Err != nil {
		return result.Err
	}
	a.lastValue = result.Value
	return nil
}

func (a *Interpreter) VisitPrintStmt(stmt *syntax.Print) error {
	result := a.evaluate(stmt.Expression)
	if result.Err != nil {
		return result.Err
	}
	fmt.Fprintf(a.out, "%s\n", stringify(result.Value))
	return nil
}

func (a *Interpreter) VisitReturnStmt(stmt *syntax.Return) error {
	ret := &ErrReturn{}
	if stmt.Value != nil {
		result := a.evaluate(stmt.Value)
		if result.Err != nil {
			return result.Err
		}
		ret.Value = result.Value
	}
	return ret
}

func (a *Interpreter) VisitVarStmt(stmt *syntax.Var) error {
	var value any
	if stmt.Initializer != nil {
		result := a.evaluate(stmt.Initializer)
		if result.Err != nil {
			return result.Err
		}
		value = result.Value
	}
	return a.env.define(stmt.Name.Lexeme, value)
}

func (a *Interpreter) VisitAssignExpr(expr *syntax.Assign) syntax.Result {
	result := a.evaluate(expr.Value)
	if result.Err != nil {
		return syntax.Result{Err: result.Err}
	}
	if err := a.env.assign(expr.Name, result.Value); err != nil {
		return syntax.Result{Err: err}
	}
	return result
}

func (a *Interpreter) VisitBinaryExpr(expr *syntax.Binary) syntax.Result {
	left := a.evaluate(expr.Left)
	if left.Err != nil {
		return left
	}
	right := a.evaluate(expr.Right)
	if right.Err != nil {
		return right
	}

	switch expr.Operator.TokenType {
	case syntax.TOKEN_PLUS:
		if leftVal, ok := left.Value.(string); ok {
			if rightVal, ok_ := right.Value.(string); ok_ {
				return syntax.Result{Value: leftVal + rightVal}
			}
			return syntax.Result{Err: fmt.Errorf("right value is not a string: %v", right.Value)}
		}
		if leftVal, ok := left.Value.(float64); ok {
			if rightVal, ok_ := right.Value.(float64); ok_ {
				return syntax.Result{Value: leftVal + rightVal}
			}
			return syntax.Result{Err: fmt.Errorf("right value is not a number: %v", right.Value)}
		}
		return syntax.Result{Err: fmt.Errorf("operands of + must be strings or numbers, got %v", left.Value)}
	}
	return syntax.Result{Err: fmt.Errorf("unknown binary operator: %s", expr.Operator.Lexeme)}
}

func (a *Interpreter) VisitCallExpr(expr *syntax.Call) syntax.Result {
	args, err := a.evaluateArguments(expr.Arguments)
	if err != nil {
		return syntax.Result{Err: err}
	}

	// a call on a property is a method invocation on the object
	if get, ok := expr.Callee.(*syntax.Get); ok {
		object := a.evaluate(get.Object)
		if object.Err != nil {
			return object
		}
		instance, ok := object.Value.(*runtime.Instance)
		if !ok {
			return syntax.Result{Err: fmt.Errorf("can't call method %s on %v", get.Name.Lexeme, object.Value)}
		}
		value, err := a.dispatcher.Invoke(instance, get.Name.Lexeme, args)
		if err != nil {
			return syntax.Result{Err: err}
		}
		return syntax.Result{Value: value}
	}

	callee := a.evaluate(expr.Callee)
	if callee.Err != nil {
		return callee
	}
	class, ok := callee.Value.(*runtime.ClassDefinition)
	if !ok {
		return syntax.Result{Err: fmt.Errorf("can only call classes and methods, got %v", callee.Value)}
	}
	instance, err := a.registry.Instantiate(class.Name(), args)
	if err != nil {
		return syntax.Result{Err: err}
	}
	return syntax.Result{Value: instance}
}

func (a *Interpreter) VisitGetExpr(expr *syntax.Get) syntax.Result {
	object := a.evaluate(expr.Object)
	if object.Err != nil {
		return object
	}
	instance, ok := object.Value.(*runtime.Instance)
	if !ok {
		return syntax.Result{Err: fmt.Errorf("only instances have properties, got %v", object.Value)}
	}
	value, err := instance.Get(expr.Name.Lexeme)
	if err != nil {
		return syntax.Result{Err: err}
	}
	return syntax.Result{Value: value}
}

func (a *Interpreter) VisitGroupingExpr(expr *syntax.Grouping) syntax.Result {
	return a.evaluate(expr.Expression)
}

func (a *Interpreter) VisitLiteralExpr(expr *syntax.Literal) syntax.Result {
	return syntax.Result{Value: expr.Value}
}

func (a *Interpreter) VisitSetExpr(expr *syntax.Set) syntax.Result {
	object := a.evaluate(expr.Object)
	if object.Err != nil {
		return object
	}
	instance, ok := object.Value.(*runtime.Instance)
	if !ok {
		return syntax.Result{Err: fmt.Errorf("only instances have fields, got %v", object.Value)}
	}
	value := a.evaluate(expr.Value)
	if value.Err != nil {
		return value
	}
	instance.Set(expr.Name.Lexeme, value.Value)
	return value
}

func (a *Interpreter) VisitSuperExpr(expr *syntax.Super) syntax.Result {
	if a.call == nil {
		return syntax.Result{Err: fmt.Errorf("can't use 'super' outside of a method")}
	}
	args, err := a.evaluateArguments(expr.Arguments)
	if err != nil {
		return syntax.Result{Err: err}
	}
	value, err := a.call.Delegate(expr.Method.Lexeme, args)
	if err != nil {
		return syntax.Result{Err: err}
	}
	return syntax.Result{Value: value}
}

func (a *Interpreter) VisitThisExpr(expr *syntax.This) syntax.Result {
	if a.call == nil {
		return syntax.Result{Err: fmt.Errorf("can't use 'this' outside of a method")}
	}
	return syntax.Result{Value: a.call.Instance}
}

func (a *Interpreter) VisitVariableExpr(expr *syntax.Variable) syntax.Result {
	val, err := a.env.get(expr.Name)
	if err != nil {
		return syntax.Result{Err: err}
	}
	return syntax.Result{Value: val}
}

func (a *Interpreter) evaluateArguments(exprs []syntax.Expr) ([]any, error) {
	args := make([]any, 0, len(exprs))
	for _, argExpr := range exprs {
		arg := a.evaluate(argExpr)
		if arg.Err != nil {
			return nil, arg.Err
		}
		args = append(args, arg.Value)
	}
	return args, nil
}

func stringify(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", value)
}
