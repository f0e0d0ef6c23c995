// Package machine implements the positional-addressing integer machine.
//
// A program and its data share a single flat memory: a zero-indexed array
// of signed 64-bit integers. Every instruction is four cells wide (opcode,
// two operand addresses, and a destination address). Operand addresses are
// dereferenced against memory during decode; the destination address is
// used as-is. The instruction set is add, multiply, and halt.
//
// Memory updates are copy-on-write: a write yields a new memory image with
// exactly one cell changed, leaving prior snapshots untouched.
package machine
