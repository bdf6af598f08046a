package interpreter

import (
	"errors"

	"github.com/vroomlang/vroom/internal/runtime"
	"github.com/vroomlang/vroom/internal/syntax"
)

// ScriptMethod backs a runtime method with a parsed method body.
type ScriptMethod struct {
	declaration *syntax.Method
	closure     *Environment
	interp      *Interpreter
}

func NewScriptMethod(declaration *syntax.Method, closure *Environment, interp *Interpreter) *ScriptMethod {
	return &ScriptMethod{
		declaration: declaration,
		closure:     closure,
		interp:      interp,
	}
}

func (m *ScriptMethod) Arity() int {
	return len(m.declaration.Params)
}

func (m *ScriptMethod) Call(call *runtime.CallContext) (any, error) {
	previousEnv := m.interp.env
	previousCall := m.interp.call
	m.interp.env = NewEnvironment(m.closure)
	m.interp.call = call
	defer func() {
		m.interp.env = previousEnv
		m.interp.call = previousCall
	}()
	for idx, param := range m.declaration.Params {
		if err := m.interp.env.define(param.Lexeme, call.Args[idx]); err != nil {
			return nil, err
		}
	}
	for _, stmt := range m.declaration.Body {
		if err := m.interp.execute(stmt); err != nil {
			var ret *ErrReturn
			if errors.As(err, &ret) {
				return ret.Value, nil
			}
			return nil, err
		}
	}
	return nil, nil
}

func (m *ScriptMethod) String() string {
	return "<method " + m.declaration.Name.Lexeme + ">"
}
