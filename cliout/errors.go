package cliout

import "errors"

// ErrInvalidArgument indicates a malformed color, mark, color span or other
// argument. It is returned synchronously by the call that supplied the value.
var ErrInvalidArgument = errors.New("invalid argument")
