package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}

	table := [](struct {
		name     string
		position int
		inst     Instruction
	}){
		{"add", 0, Instruction{Op: OpAdd, A: 30, B: 40, Dest: 3}},
		{"mul", 4, Instruction{Op: OpMul, A: 3, B: 50, Dest: 0}},
		{"halt", 8, Instruction{Op: OpHalt}},
	}

	for _, entry := range table {
		inst, err := Decode(mem, entry.position)
		assert.NoError(err, entry.name)
		assert.Equal(entry.inst, inst, entry.name)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}

	first, err1 := Decode(mem, 0)
	second, err2 := Decode(mem, 0)

	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
	assert.Equal(Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, mem)
}

func TestDecode_BadOpcode(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{5, 0, 0, 0}

	_, err := Decode(mem, 0)
	assert.Equal(ErrOpcode(5), err)
}

func TestDecode_Bounds(t *testing.T) {
	assert := assert.New(t)

	// Truncated instruction.
	_, err := Decode(Memory{1}, 0)
	assert.Equal(ErrAddress(1), err)

	// Operand address out of range.
	_, err = Decode(Memory{1, 99, 0, 0}, 0)
	assert.Equal(ErrAddress(99), err)

	// Position out of range.
	_, err = Decode(Memory{99}, 4)
	assert.Equal(ErrAddress(4), err)
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 0, 0, 0, 99}

	out, err := Execute(mem, Instruction{Op: OpAdd, A: 1, B: 1, Dest: 0})
	assert.NoError(err)
	assert.Equal(Memory{2, 0, 0, 0, 99}, out)

	out, err = Execute(mem, Instruction{Op: OpMul, A: 3, B: 2, Dest: 3})
	assert.NoError(err)
	assert.Equal(Memory{1, 0, 0, 6, 99}, out)

	// The input memory is untouched either way.
	assert.Equal(Memory{1, 0, 0, 0, 99}, mem)
}

func TestExecute_Halt(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{99, 7, 8, 9}

	out, err := Execute(mem, Instruction{Op: OpHalt})
	assert.NoError(err)
	assert.Equal(mem, out)
}

func TestExecute_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 0, 0, 0, 99}

	_, err := Execute(mem, Instruction{Op: OpAdd, A: 1, B: 1, Dest: 5})
	assert.Equal(ErrAddress(5), err)
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add 30 40 3", Instruction{Op: OpAdd, A: 30, B: 40, Dest: 3}.String())
	assert.Equal("mul 3 50 0", Instruction{Op: OpMul, A: 3, B: 50, Dest: 0}.String())
	assert.Equal("halt", Instruction{Op: OpHalt}.String())
}
