package runtime

// InitMethod is the reserved name of a class initializer.
const InitMethod = "init"

// Method is a callable method body. Implementations receive the call
// context so they can read and write the receiver's fields and issue
// delegated calls further up the ancestor chain.
type Method interface {
	Arity() int
	Call(call *CallContext) (any, error)
}

// ClassDefinition holds one registered class: its name, an optional
// parent link, the methods it defines directly, and an optional
// initializer. Parent links always point at previously registered
// classes, so the chain is acyclic and ends at a root with no parent.
type ClassDefinition struct {
	name        string
	parent      *ClassDefinition
	methods     map[string]Method
	initializer Method
}

func (c *ClassDefinition) Name() string {
	return c.name
}

func (c *ClassDefinition) Parent() *ClassDefinition {
	return c.parent
}

// Method reports the method a class defines directly, not one inherited
// from an ancestor.
func (c *ClassDefinition) Method(name string) (Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// MethodNames lists the directly defined method names, unordered.
func (c *ClassDefinition) MethodNames() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	return names
}

func (c *ClassDefinition) String() string {
	return "<class " + c.name + ">"
}

// NativeFunc adapts a Go function into a method body.
type NativeFunc func(call *CallContext) (any, error)

type NativeMethod struct {
	arity int
	fn    NativeFunc
}

func NewNativeMethod(arity int, fn NativeFunc) *NativeMethod {
	return &NativeMethod{arity: arity, fn: fn}
}

func (n *NativeMethod) Arity() int {
	return n.arity
}

func (n *NativeMethod) Call(call *CallContext) (any, error) {
	return n.fn(call)
}

func (n *NativeMethod) String() string {
	return "<native method>"
}
