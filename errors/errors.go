package errors

import "fmt"

var (
	ErrEmptyUserName = fmt.Errorf("user name is empty")
	ErrEmptyWordList = fmt.Errorf("no words have been provided")
	ErrUnknownTier   = fmt.Errorf("unknown user tier")
	ErrDuplicateUser = fmt.Errorf("user already registered")
)
