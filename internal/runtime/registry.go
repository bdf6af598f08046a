package runtime

import (
	"errors"
	"iter"
)

// Registry stores class definitions. It is populated during setup and
// treated as read-only by the dispatcher afterwards.
type Registry struct {
	classes map[string]*ClassDefinition
	// definition order, for listings
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]*ClassDefinition),
	}
}

// Define registers a new class. The parent, if any, must already be
// registered, which keeps the parent graph acyclic.
func (r *Registry) Define(name, parent string, methods map[string]Method, initializer Method) (*ClassDefinition, error) {
	if _, ok := r.classes[name]; ok {
		return nil, &DuplicateClassError{Name: name}
	}
	var parentClass *ClassDefinition
	if parent != "" {
		var ok bool
		parentClass, ok = r.classes[parent]
		if !ok {
			return nil, &UnknownParentError{Class: name, Parent: parent}
		}
	}
	if methods == nil {
		methods = make(map[string]Method)
	}
	class := &ClassDefinition{
		name:        name,
		parent:      parentClass,
		methods:     methods,
		initializer: initializer,
	}
	r.classes[name] = class
	r.order = append(r.order, name)
	return class, nil
}

func (r *Registry) Lookup(name string) (*ClassDefinition, error) {
	class, ok := r.classes[name]
	if !ok {
		return nil, &UnknownClassError{Name: name}
	}
	return class, nil
}

// Classes lists all registered classes in definition order.
func (r *Registry) Classes() []*ClassDefinition {
	classes := make([]*ClassDefinition, 0, len(r.order))
	for _, name := range r.order {
		classes = append(classes, r.classes[name])
	}
	return classes
}

// AncestorChain yields the named class and then each parent up to the
// root. The sequence is restartable: every range walks the chain again.
func (r *Registry) AncestorChain(name string) (iter.Seq[*ClassDefinition], error) {
	start, ok := r.classes[name]
	if !ok {
		return nil, &UnknownClassError{Name: name}
	}
	return func(yield func(*ClassDefinition) bool) {
		for c := start; c != nil; c = c.parent {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// Instantiate builds an instance of the named class and runs the
// nearest initializer found on the ancestor chain, the class's own
// first. A class without any initializer accepts no arguments.
func (r *Registry) Instantiate(name string, args []any) (*Instance, error) {
	class, ok := r.classes[name]
	if !ok {
		return nil, &UnknownClassError{Name: name}
	}
	instance := NewInstance(class)
	initializer, owner, err := resolveFrom(class, InitMethod)
	if err != nil {
		var noMethod *NoMethodError
		if !errors.As(err, &noMethod) {
			return nil, err
		}
		if len(args) != 0 {
			return nil, &ArityError{Callee: name, Want: 0, Got: len(args)}
		}
		return instance, nil
	}
	if initializer.Arity() != len(args) {
		return nil, &ArityError{Callee: name, Want: initializer.Arity(), Got: len(args)}
	}
	if _, err := initializer.Call(&CallContext{
		Instance: instance,
		Args:     args,
		owner:    owner,
		method:   InitMethod,
	}); err != nil {
		return nil, err
	}
	return instance, nil
}
