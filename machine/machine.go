package machine

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _machine_defines = map[string]string{
	"OP_ADD":  fmt.Sprintf("%v", int64(OpAdd)),
	"OP_MUL":  fmt.Sprintf("%v", int64(OpMul)),
	"OP_HALT": fmt.Sprintf("%v", int64(OpHalt)),
	"STRIDE":  fmt.Sprintf("%v", Stride),
}

// Machine is the interpreter state: a memory image and the current
// instruction position. Memory is exclusively owned by the machine
// between steps; each executed instruction rebinds it to a new image.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Current memory image.
	Ip     int    // Current instruction position.
	Steps  int    // Instructions executed since the last reset.
}

// NewMachine creates a machine over a memory image.
func NewMachine(mem Memory) (m *Machine) {
	m = &Machine{
		Memory: mem,
	}

	return
}

// Defines for the machine
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Reset rebinds the machine to a new memory image and rewinds the
// instruction position.
func (m *Machine) Reset(mem Memory) {
	m.Memory = mem
	m.Ip = 0
	m.Steps = 0
}

// Step decodes and executes a single instruction. done is true once a
// halt instruction has been decoded; the halt itself is never executed.
func (m *Machine) Step() (done bool, err error) {
	inst, err := Decode(m.Memory, m.Ip)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%04d: %v", m.Ip, inst)
	}

	if inst.Op == OpHalt {
		done = true
		return
	}

	m.Memory, err = Execute(m.Memory, inst)
	if err != nil {
		return
	}

	m.Ip += Stride
	m.Steps += 1

	return
}

// Run steps the machine until it halts, then returns the value left in
// the first memory cell. A program that never decodes a halt runs until
// it fails; callers wanting a bound should drive Step themselves.
func (m *Machine) Run() (value int64, err error) {
	for {
		var done bool
		done, err = m.Step()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	return m.Memory.Read(0)
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("  ip: %04d\nstep: %v\n", m.Ip, m.Steps)
	for address, value := range m.Memory.Cells() {
		text += fmt.Sprintf("%04d: %v\n", address, value)
	}

	return
}
