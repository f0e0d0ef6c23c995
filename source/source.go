// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package source loads program listings into memory images.
//
// A listing is the comma-separated integer program form, extended with
// line comments (';'), '.equ' equates, predefined opcode equates, and
// load-time $() expression evaluation. Every listing lowers to the same
// flat integer sequence the machine executes.
package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/machine"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"ADD":    fmt.Sprintf("%v", int64(machine.OpAdd)),
	"MUL":    fmt.Sprintf("%v", int64(machine.OpMul)),
	"HALT":   fmt.Sprintf("%v", int64(machine.OpHalt)),
}

// Defines returns an iterator over the predefined equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(sysEquate)
}

// Loader reads a program listing and lowers it to a memory image.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (ld *Loader) Predefine(equ string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

// valueOf returns the value of a simple token.
func (ld *Loader) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = machine.ErrParseNumber(word)
	}

	return
}

// parenEval does load-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		value64, _err := ld.valueOf(str)
		if _err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int64
	return
}

// parseLine lowers a single listing line to integer tokens.
func (ld *Loader) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	ld.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	line = strings.ReplaceAll(line, ",", " ")
	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := ld.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		ld.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := ld.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// Parse parses an input stream into a memory image.
func (ld *Loader) Parse(input io.Reader) (mem machine.Memory, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = maps.Clone(sysEquate)
	for attr, val := range ld.predefine {
		ld.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = ld.parseLine(line, lineno)
		if err != nil {
			return
		}

		for _, word := range words {
			var value int64
			value, err = ld.valueOf(word)
			if err != nil {
				return
			}
			mem = append(mem, value)
		}
	}

	return
}
