package machine

import (
	"fmt"
)

// Instruction is a single decoded operation. The operand values A and B
// are already resolved against memory; Dest is a raw destination address.
// An Instruction lives only for the decode-execute step that produced it.
type Instruction struct {
	Op   Op    // Operation selector.
	A    int64 // First operand value.
	B    int64 // Second operand value.
	Dest int   // Destination address (not dereferenced).
}

// Decode produces the Instruction at position. Operand addresses are
// dereferenced eagerly, so a decode performs up to five memory reads and
// no writes; decoding the same position against the same memory twice
// yields the same result.
func Decode(mem Memory, position int) (inst Instruction, err error) {
	opcode, err := mem.Read(position)
	if err != nil {
		return
	}

	inst.Op = Op(opcode)
	switch inst.Op {
	case OpAdd, OpMul:
		var p [3]int64
		for n := range p {
			p[n], err = mem.Read(position + 1 + n)
			if err != nil {
				return
			}
		}
		inst.A, err = mem.Read(int(p[0]))
		if err != nil {
			return
		}
		inst.B, err = mem.Read(int(p[1]))
		if err != nil {
			return
		}
		inst.Dest = int(p[2])
	case OpHalt:
		// No operands.
	default:
		err = ErrOpcode(opcode)
	}

	return
}

// Execute applies a decoded instruction, returning the updated memory.
// Add and Mul write a single cell; Halt leaves memory unchanged. The
// arithmetic wraps per native signed 64-bit semantics.
func Execute(mem Memory, inst Instruction) (out Memory, err error) {
	switch inst.Op {
	case OpAdd:
		out, err = mem.Write(inst.Dest, inst.A+inst.B)
	case OpMul:
		out, err = mem.Write(inst.Dest, inst.A*inst.B)
	case OpHalt:
		out = mem
	default:
		err = ErrOpcode(int64(inst.Op))
	}

	return
}

// String returns the trace form of the instruction.
func (inst Instruction) String() string {
	if inst.Op == OpHalt {
		return inst.Op.String()
	}

	return fmt.Sprintf("%v %v %v %v", inst.Op, inst.A, inst.B, inst.Dest)
}
