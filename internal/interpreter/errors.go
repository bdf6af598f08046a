package interpreter

// ErrReturn unwinds a method body when a return statement executes.
type ErrReturn struct {
	Value any
}

func (e *ErrReturn) Error() string {
	return "return"
}
