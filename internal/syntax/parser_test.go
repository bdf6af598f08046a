package syntax

import (
	"testing"
)

func parseAll(t *testing.T, source string) []Stmt {
	t.Helper()
	tokens := scanAll(t, source)
	parser := NewParser(tokens)
	stmts := parser.Parse()
	if err := parser.GetError(); err != nil {
		t.Fatalf("parse error for %q: %v", source, err)
	}
	return stmts
}

func TestParseClassDecl(t *testing.T) {
	stmts := parseAll(t, `
class Car < Vehicle {
  go() {
    return super.go() + "!";
  }
  honk(times) {
    return times;
  }
}`)
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(stmts))
	}
	class, ok := stmts[0].(*Class)
	if !ok {
		t.Fatalf("want class statement, got %T", stmts[0])
	}
	if class.Name.Lexeme != "Car" {
		t.Fatalf("want name Car, got %s", class.Name.Lexeme)
	}
	if class.Parent.IsEmpty() || class.Parent.Lexeme != "Vehicle" {
		t.Fatalf("want parent Vehicle, got %v", class.Parent)
	}
	if len(class.Methods) != 2 {
		t.Fatalf("want 2 methods, got %d", len(class.Methods))
	}
	if class.Methods[1].Name.Lexeme != "honk" || len(class.Methods[1].Params) != 1 {
		t.Fatalf("unexpected method %v", class.Methods[1])
	}
}

func TestParseClassWithoutParent(t *testing.T) {
	stmts := parseAll(t, "class Vehicle {}")
	class := stmts[0].(*Class)
	if !class.Parent.IsEmpty() {
		t.Fatalf("want no parent, got %v", class.Parent)
	}
}

func TestParseSuperCall(t *testing.T) {
	stmts := parseAll(t, `
class Car < Vehicle {
  go() {
    return super.go();
  }
}`)
	class := stmts[0].(*Class)
	ret, ok := class.Methods[0].Body[0].(*Return)
	if !ok {
		t.Fatalf("want return statement, got %T", class.Methods[0].Body[0])
	}
	super, ok := ret.Value.(*Super)
	if !ok {
		t.Fatalf("want super expression, got %T", ret.Value)
	}
	if super.Method.Lexeme != "go" {
		t.Fatalf("want method go, got %s", super.Method.Lexeme)
	}
}

func TestParseMethodCallChain(t *testing.T) {
	stmts := parseAll(t, "car.go();")
	expr := stmts[0].(*Expression).Expression
	call, ok := expr.(*Call)
	if !ok {
		t.Fatalf("want call, got %T", expr)
	}
	get, ok := call.Callee.(*Get)
	if !ok {
		t.Fatalf("want property callee, got %T", call.Callee)
	}
	if get.Name.Lexeme != "go" {
		t.Fatalf("want method go, got %s", get.Name.Lexeme)
	}
}

func TestParseFieldAssignment(t *testing.T) {
	stmts := parseAll(t, "this.wheels = 4;")
	expr := stmts[0].(*Expression).Expression
	set, ok := expr.(*Set)
	if !ok {
		t.Fatalf("want set expression, got %T", expr)
	}
	if set.Name.Lexeme != "wheels" {
		t.Fatalf("want field wheels, got %s", set.Name.Lexeme)
	}
}

func TestParseError(t *testing.T) {
	tokens := scanAll(t, "class {")
	parser := NewParser(tokens)
	parser.Parse()
	if parser.GetError() == nil {
		t.Fatal("want parse error")
	}
}

func TestParseSuperRequiresCall(t *testing.T) {
	tokens := scanAll(t, `
class Car < Vehicle {
  go() {
    return super.go;
  }
}`)
	parser := NewParser(tokens)
	parser.Parse()
	if parser.GetError() == nil {
		t.Fatal("want parse error for super without call")
	}
}

func TestAstPrinter(t *testing.T) {
	printer := &AstPrinter{}

	got := printer.PrintStmts(parseAll(t, `print "hi" + "there";`))
	if got != `(print (+ "hi" "there"))` {
		t.Fatalf("unexpected output %s", got)
	}

	got = printer.PrintStmts(parseAll(t, "var car = Car();"))
	if got != "(var car (call Car))" {
		t.Fatalf("unexpected output %s", got)
	}

	got = printer.PrintStmts(parseAll(t, "class Vehicle { go() { return nil; } }"))
	if got != "(class Vehicle (method go (params) (return nil)))" {
		t.Fatalf("unexpected output %s", got)
	}
}
