package machine

// Op is an instruction opcode.
type Op int64

//go:generate go tool stringer -linecomment -type=Op
const (
	OpAdd  = Op(1)  // add
	OpMul  = Op(2)  // mul
	OpHalt = Op(99) // halt
)

// Stride is the fixed instruction width: opcode, two operand addresses,
// and a destination address.
const Stride = 4
