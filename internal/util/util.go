package util

import (
	"fmt"
)

// ErrorMsg formats a source diagnostic with its line number.
func ErrorMsg(line int, message string) error {
	return fmt.Errorf("[line %d] Error: %s", line, message)
}
