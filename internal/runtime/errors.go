package runtime

import "fmt"

// DuplicateClassError is returned when a class name is defined twice.
type DuplicateClassError struct {
	Name string
}

func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("class %s is already defined", e.Name)
}

// UnknownParentError is returned when a class names a parent that has
// not been registered yet.
type UnknownParentError struct {
	Class  string
	Parent string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("class %s inherits from unknown class %s", e.Class, e.Parent)
}

// UnknownClassError is returned when a lookup names an unregistered class.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class %s", e.Name)
}

// ArityError is returned when a call passes the wrong number of arguments.
type ArityError struct {
	Callee string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d arguments but got %d", e.Callee, e.Want, e.Got)
}

// NoMethodError is returned when no class in the searched chain defines
// the requested method.
type NoMethodError struct {
	Method string
	Class  string
}

func (e *NoMethodError) Error() string {
	return fmt.Sprintf("undefined method %s for class %s", e.Method, e.Class)
}
