package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

const vehiclesDemo = `
class Vehicle {
  go() { return "vrrrrrrrooom!"; }
  fill_up_tank() { return "filling up!"; }
}
class Car < Vehicle {
  go() { return super.go() + "VRRROOOOOOOOOOOOOOOOOOOOOOOM!!!!!"; }
}
var car = Car();
print car.go();
print car.fill_up_tank();
`

func TestRunSource(t *testing.T) {
	var buf bytes.Buffer
	if err := runSource(vehiclesDemo, &buf); err != nil {
		t.Fatalf("run error: %v", err)
	}
	want := "vrrrrrrrooom!VRRROOOOOOOOOOOOOOOOOOOOOOOM!!!!!\nfilling up!\n"
	if buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}

func TestCompileErrorStatus(t *testing.T) {
	err := runSource("class ;", io.Discard)
	if err == nil {
		t.Fatal("want compile error")
	}
	if status := exitStatus(err); status != 65 {
		t.Fatalf("want status 65, got %d", status)
	}
}

func TestRuntimeErrorStatus(t *testing.T) {
	err := runSource(`
class Vehicle {}
var v = Vehicle();
v.honk();
`, io.Discard)
	if err == nil {
		t.Fatal("want runtime error")
	}
	if status := exitStatus(err); status != 70 {
		t.Fatalf("want status 70, got %d", status)
	}
	if !strings.Contains(err.Error(), "honk") || !strings.Contains(err.Error(), "Vehicle") {
		t.Fatalf("message must name the method and class, got %q", err.Error())
	}
}

func TestExitStatusSuccess(t *testing.T) {
	if status := exitStatus(nil); status != 0 {
		t.Fatalf("want status 0, got %d", status)
	}
}
