package runtime

import (
	log "github.com/sirupsen/logrus"
)

// Dispatcher resolves method invocations against the ancestor chain.
// It keeps no state between invocations; resolution depends only on
// the chain at call time.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Invoke resolves methodName starting at the instance's own class and
// runs the first directly defined body it finds.
func (d *Dispatcher) Invoke(instance *Instance, methodName string, args []any) (any, error) {
	return d.InvokeFrom(instance.class, instance, methodName, args)
}

// InvokeFrom resolves methodName starting at an explicit class, used
// for delegated calls that resume the search partway up the chain.
func (d *Dispatcher) InvokeFrom(start *ClassDefinition, instance *Instance, methodName string, args []any) (any, error) {
	method, owner, err := resolveFrom(start, methodName)
	if err != nil {
		return nil, err
	}
	if method.Arity() != len(args) {
		return nil, &ArityError{
			Callee: owner.name + "." + methodName,
			Want:   method.Arity(),
			Got:    len(args),
		}
	}
	return method.Call(&CallContext{
		Instance: instance,
		Args:     args,
		owner:    owner,
		method:   methodName,
	})
}

// CallContext is what a method body executes against: the receiver,
// the arguments, and enough position to delegate further up the chain.
type CallContext struct {
	Instance *Instance
	Args     []any

	// class that directly defines the running body
	owner  *ClassDefinition
	method string
}

func (c *CallContext) Owner() *ClassDefinition {
	return c.owner
}

// Delegate resumes resolution one link above the defining class, the
// way a subclass method augments a parent method instead of replacing
// it. Delegating past the root fails with NoMethodError.
func (c *CallContext) Delegate(methodName string, args []any) (any, error) {
	if c.owner.parent == nil {
		log.WithFields(log.Fields{
			"method": methodName,
			"caller": c.owner.name + "." + c.method,
		}).Debug("delegation past root")
		return nil, &NoMethodError{Method: methodName, Class: c.owner.name}
	}
	method, owner, err := resolveFrom(c.owner.parent, methodName)
	if err != nil {
		return nil, err
	}
	if method.Arity() != len(args) {
		return nil, &ArityError{
			Callee: owner.name + "." + methodName,
			Want:   method.Arity(),
			Got:    len(args),
		}
	}
	return method.Call(&CallContext{
		Instance: c.Instance,
		Args:     args,
		owner:    owner,
		method:   methodName,
	})
}

// resolveFrom walks the chain from start and stops at the first class
// that defines methodName directly. Initializers live outside the
// method map, so the init walk checks the initializer slot instead.
func resolveFrom(start *ClassDefinition, methodName string) (Method, *ClassDefinition, error) {
	for c := start; c != nil; c = c.parent {
		log.WithFields(log.Fields{
			"method": methodName,
			"class":  c.name,
		}).Debug("resolution step")
		if methodName == InitMethod {
			if c.initializer != nil {
				return c.initializer, c, nil
			}
			continue
		}
		if m, ok := c.methods[methodName]; ok {
			log.WithFields(log.Fields{
				"method": methodName,
				"class":  c.name,
			}).Debug("resolved")
			return m, c, nil
		}
	}
	return nil, nil, &NoMethodError{Method: methodName, Class: start.name}
}
