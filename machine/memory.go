package machine

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Memory is the flat address space of the machine.
type Memory []int64

// Read returns the value stored at address.
func (m Memory) Read(address int) (value int64, err error) {
	if address < 0 || address >= len(m) {
		err = ErrAddress(address)
		return
	}

	value = m[address]
	return
}

// Write returns a new Memory identical to m, except that address now
// holds value. The input memory is never modified.
func (m Memory) Write(address int, value int64) (out Memory, err error) {
	if address < 0 || address >= len(m) {
		err = ErrAddress(address)
		return
	}

	out = slices.Clone(m)
	out[address] = value
	return
}

// Cells returns an iterator over (address, value) pairs.
func (m Memory) Cells() iter.Seq2[int, int64] {
	return func(yield func(address int, value int64) bool) {
		for address, value := range m {
			if !yield(address, value) {
				return
			}
		}
	}
}

// ParseMemory parses a comma-separated list of signed integers into a
// memory image. Empty input yields an empty memory.
func ParseMemory(text string) (mem Memory, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for _, token := range strings.Split(text, ",") {
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			err = ErrParseNumber(token)
			return
		}
		mem = append(mem, value)
	}

	return
}
