package machine

import (
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// ErrOpcode reports an opcode value that is none of add, mul, or halt.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress reports an address outside the memory image.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %v out of range", int(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrParseNumber reports a program token that is not a signed integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
