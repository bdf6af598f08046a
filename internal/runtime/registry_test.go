package runtime

import (
	"errors"
	"testing"
)

func constMethod(s string) Method {
	return NewNativeMethod(0, func(call *CallContext) (any, error) {
		return s, nil
	})
}

func defineVehicleCar(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if _, err := r.Define("Vehicle", "", map[string]Method{
		"go":           constMethod("vrrrrrrrooom!"),
		"fill_up_tank": constMethod("filling up!"),
	}, nil); err != nil {
		t.Fatalf("define Vehicle: %v", err)
	}
	if _, err := r.Define("Car", "Vehicle", nil, nil); err != nil {
		t.Fatalf("define Car: %v", err)
	}
	return r
}

func TestDefineDuplicateClass(t *testing.T) {
	r := defineVehicleCar(t)
	_, err := r.Define("Vehicle", "", nil, nil)
	var dup *DuplicateClassError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateClassError, got %v", err)
	}
	if dup.Name != "Vehicle" {
		t.Fatalf("want name Vehicle, got %s", dup.Name)
	}
}

func TestDefineUnknownParent(t *testing.T) {
	r := NewRegistry()
	_, err := r.Define("Car", "Vehicle", nil, nil)
	var unknown *UnknownParentError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownParentError, got %v", err)
	}
	if unknown.Class != "Car" || unknown.Parent != "Vehicle" {
		t.Fatalf("unexpected fields: %+v", unknown)
	}
}

func TestAncestorChainOrder(t *testing.T) {
	r := defineVehicleCar(t)
	chain, err := r.AncestorChain("Car")
	if err != nil {
		t.Fatalf("ancestor chain: %v", err)
	}
	var names []string
	var last *ClassDefinition
	for c := range chain {
		names = append(names, c.Name())
		last = c
	}
	if len(names) != 2 || names[0] != "Car" || names[1] != "Vehicle" {
		t.Fatalf("unexpected chain %v", names)
	}
	if last.Parent() != nil {
		t.Fatalf("chain must terminate at a class with no parent, got %v", last.Parent())
	}
}

func TestAncestorChainRestartable(t *testing.T) {
	r := defineVehicleCar(t)
	chain, err := r.AncestorChain("Car")
	if err != nil {
		t.Fatalf("ancestor chain: %v", err)
	}
	for range 2 {
		count := 0
		for range chain {
			count++
		}
		if count != 2 {
			t.Fatalf("want 2 classes per walk, got %d", count)
		}
	}
}

func TestAncestorChainUnknownClass(t *testing.T) {
	r := NewRegistry()
	_, err := r.AncestorChain("Ghost")
	var unknown *UnknownClassError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownClassError, got %v", err)
	}
}

func TestInstantiateWithoutInitializer(t *testing.T) {
	r := defineVehicleCar(t)
	instance, err := r.Instantiate("Car", nil)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	if instance.Class().Name() != "Car" {
		t.Fatalf("want class Car, got %s", instance.Class().Name())
	}

	_, err = r.Instantiate("Car", []any{1})
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("want ArityError for args without initializer, got %v", err)
	}
	if arity.Want != 0 || arity.Got != 1 {
		t.Fatalf("unexpected arity fields: %+v", arity)
	}
}

func TestInstantiateRunsNearestInitializer(t *testing.T) {
	r := NewRegistry()
	initializer := NewNativeMethod(1, func(call *CallContext) (any, error) {
		call.Instance.Set("wheels", call.Args[0])
		return nil, nil
	})
	if _, err := r.Define("Vehicle", "", nil, initializer); err != nil {
		t.Fatalf("define Vehicle: %v", err)
	}
	if _, err := r.Define("Car", "Vehicle", nil, nil); err != nil {
		t.Fatalf("define Car: %v", err)
	}

	instance, err := r.Instantiate("Car", []any{4})
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	wheels, err := instance.Get("wheels")
	if err != nil {
		t.Fatalf("get wheels: %v", err)
	}
	if wheels != 4 {
		t.Fatalf("want 4 wheels, got %v", wheels)
	}

	_, err = r.Instantiate("Car", nil)
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("want ArityError, got %v", err)
	}
	if arity.Want != 1 || arity.Got != 0 {
		t.Fatalf("unexpected arity fields: %+v", arity)
	}
}

func TestInstantiateUnknownClass(t *testing.T) {
	r := NewRegistry()
	_, err := r.Instantiate("Ghost", nil)
	var unknown *UnknownClassError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownClassError, got %v", err)
	}
}

func TestClassesInDefinitionOrder(t *testing.T) {
	r := defineVehicleCar(t)
	classes := r.Classes()
	if len(classes) != 2 || classes[0].Name() != "Vehicle" || classes[1].Name() != "Car" {
		t.Fatalf("unexpected class listing: %v", classes)
	}
}
