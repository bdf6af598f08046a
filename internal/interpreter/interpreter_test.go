package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vroomlang/vroom/internal/runtime"
	"github.com/vroomlang/vroom/internal/syntax"
)

func parseSrc(t *testing.T, source string) []syntax.Stmt {
	t.Helper()
	scanner := syntax.NewScanner(source)
	tokens := scanner.ScanTokens()
	if err := scanner.GetError(); err != nil {
		t.Fatalf("scan error: %v\nsource:\n%s", err, source)
	}
	parser := syntax.NewParser(tokens)
	stmts := parser.Parse()
	if err := parser.GetError(); err != nil {
		t.Fatalf("parse error: %v\nsource:\n%s", err, source)
	}
	return stmts
}

// runSrc executes source through the full pipeline and returns what it
// printed.
func runSrc(t *testing.T, source string) string {
	t.Helper()
	stmts := parseSrc(t, source)
	checker := NewChecker()
	checker.Check(stmts)
	if err := checker.GetError(); err != nil {
		t.Fatalf("check error: %v\nsource:\n%s", err, source)
	}
	var buf bytes.Buffer
	interp := NewInterpreter(&buf)
	if err := interp.Interpret(stmts); err != nil {
		t.Fatalf("interpret error: %v\nsource:\n%s", err, source)
	}
	return buf.String()
}

// runSrcErr executes source and returns the check or interpret error.
func runSrcErr(t *testing.T, source string) error {
	t.Helper()
	stmts := parseSrc(t, source)
	checker := NewChecker()
	checker.Check(stmts)
	if err := checker.GetError(); err != nil {
		return err
	}
	interp := NewInterpreter(&bytes.Buffer{})
	err := interp.Interpret(stmts)
	if err == nil {
		t.Fatalf("want error, source ran cleanly:\n%s", source)
	}
	return err
}

const vehicleCar = `
class Vehicle {
  go() { return "vrrrrrrrooom!"; }
  fill_up_tank() { return "filling up!"; }
}
`

func TestInheritedMethods(t *testing.T) {
	got := runSrc(t, vehicleCar+`
class Car < Vehicle {}
var car = Car();
print car.go();
print car.fill_up_tank();
`)
	if got != "vrrrrrrrooom!\nfilling up!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestOverrideShadowsParent(t *testing.T) {
	got := runSrc(t, vehicleCar+`
class Car < Vehicle {
  go() { return "VRRROOOOOOOOOOOOOOOOOOOOOOOM!!!!!"; }
}
var car = Car();
var vehicle = Vehicle();
print car.go();
print vehicle.go();
`)
	if got != "VRRROOOOOOOOOOOOOOOOOOOOOOOM!!!!!\nvrrrrrrrooom!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSuperComposition(t *testing.T) {
	got := runSrc(t, vehicleCar+`
class Car < Vehicle {
  go() { return super.go() + "VRRROOOOOOOOOOOOOOOOOOOOOOOM!!!!!"; }
}
var car = Car();
print car.go();
`)
	if got != "vrrrrrrrooom!VRRROOOOOOOOOOOOOOOOOOOOOOOM!!!!!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestUndefinedMethod(t *testing.T) {
	err := runSrcErr(t, vehicleCar+`
class Car < Vehicle {}
var car = Car();
car.honk();
`)
	var noMethod *runtime.NoMethodError
	if !errors.As(err, &noMethod) {
		t.Fatalf("want NoMethodError, got %v", err)
	}
	if noMethod.Method != "honk" || noMethod.Class != "Car" {
		t.Fatalf("unexpected fields: %+v", noMethod)
	}
}

func TestInitializerSetsFields(t *testing.T) {
	got := runSrc(t, `
class Vehicle {
  init(wheels) { this.wheels = wheels; }
}
class Motorcycle < Vehicle {
  init() { super.init(2); }
}
var bike = Motorcycle();
print bike.wheels;
`)
	if got != "2\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSuperInOverriddenMethodComposesDeep(t *testing.T) {
	got := runSrc(t, `
class Vehicle {
  describe() { return "a vehicle"; }
}
class Motorcycle < Vehicle {
  describe() { return super.describe() + " on two wheels"; }
}
var bike = Motorcycle();
print bike.describe();
`)
	if got != "a vehicle on two wheels\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInitializerArityMismatch(t *testing.T) {
	err := runSrcErr(t, `
class Vehicle {
  init(wheels) { this.wheels = wheels; }
}
var v = Vehicle(4, 5);
`)
	var arity *runtime.ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("want ArityError, got %v", err)
	}
	if arity.Want != 1 || arity.Got != 2 {
		t.Fatalf("unexpected arity fields: %+v", arity)
	}
}

func TestDuplicateClass(t *testing.T) {
	err := runSrcErr(t, `
class Vehicle {}
class Vehicle {}
`)
	var dup *runtime.DuplicateClassError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateClassError, got %v", err)
	}
}

func TestUnknownParent(t *testing.T) {
	err := runSrcErr(t, "class Car < Ghost {}")
	var unknown *runtime.UnknownParentError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownParentError, got %v", err)
	}
}

func TestSuperWithoutParentClass(t *testing.T) {
	err := runSrcErr(t, `
class Vehicle {
  go() { return super.go(); }
}
`)
	if !strings.Contains(err.Error(), "no parent") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSuperOutsideClass(t *testing.T) {
	err := runSrcErr(t, "super.go();")
	if !strings.Contains(err.Error(), "outside of a class") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestThisOutsideMethod(t *testing.T) {
	err := runSrcErr(t, "print this;")
	if !strings.Contains(err.Error(), "'this'") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestReturnOutsideMethod(t *testing.T) {
	err := runSrcErr(t, "return 1;")
	if !strings.Contains(err.Error(), "return") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestStringConcat(t *testing.T) {
	got := runSrc(t, `print "vrrrrrrrooom" + "!";`)
	if got != "vrrrrrrrooom!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestMethodArguments(t *testing.T) {
	got := runSrc(t, `
class Vehicle {
  greet(name) { return "hello " + name; }
}
var v = Vehicle();
print v.greet("driver");
`)
	if got != "hello driver\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFieldReadAndWrite(t *testing.T) {
	got := runSrc(t, `
class Vehicle {}
var v = Vehicle();
v.color = "red";
print v.color;
`)
	if got != "red\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestLastValue(t *testing.T) {
	stmts := parseSrc(t, `"vrrrrrrrooom!";`)
	interp := NewInterpreter(&bytes.Buffer{})
	if err := interp.Interpret(stmts); err != nil {
		t.Fatalf("interpret error: %v", err)
	}
	if interp.LastValue() != "vrrrrrrrooom!" {
		t.Fatalf("unexpected last value %v", interp.LastValue())
	}
}
