package runtime

import "fmt"

// Instance is a constructed object: the class it was built from plus
// its own field values.
type Instance struct {
	class  *ClassDefinition
	fields map[string]any
}

func NewInstance(class *ClassDefinition) *Instance {
	return &Instance{
		class:  class,
		fields: make(map[string]any),
	}
}

func (i *Instance) Class() *ClassDefinition {
	return i.class
}

func (i *Instance) Get(name string) (any, error) {
	if value, ok := i.fields[name]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("undefined property %s on %s", name, i.String())
}

func (i *Instance) Set(name string, value any) {
	i.fields[name] = value
}

func (i *Instance) String() string {
	return "<instance of " + i.class.name + ">"
}
