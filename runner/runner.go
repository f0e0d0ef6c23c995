// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package runner drives full program runs: noun/verb seeding, the
// step loop, and the noun/verb grid search.
package runner

import (
	"iter"
	"log"

	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/machine"
	"github.com/ezrec/intcode/source"
)

const (
	NOUN_ADDRESS = 1  // Memory cell seeded with the noun.
	VERB_ADDRESS = 2  // Memory cell seeded with the verb.
	GRID_LIMIT   = 99 // Largest noun or verb tried by Search.
)

// Runner drives a machine through a full program run.
type Runner struct {
	Verbose          bool // If set, enables verbose logging.
	*machine.Machine      // Reference to the machine state.

	MaxSteps int // Optional step budget. Zero means unlimited.
}

// NewRunner creates a new runner around an empty machine.
func NewRunner() (run *Runner) {
	run = &Runner{
		Machine: machine.NewMachine(nil),
	}

	return
}

// Defines returns an iterator over all of the defines
func (run *Runner) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		run.Machine.Defines(),
		source.Defines(),
	)
}

// Load binds a memory image to the machine and seeds the noun and verb
// cells. The input memory is left untouched, so one parsed program can
// seed any number of runs.
func (run *Runner) Load(mem machine.Memory, noun, verb int64) (err error) {
	mem, err = mem.Write(NOUN_ADDRESS, noun)
	if err != nil {
		return
	}
	mem, err = mem.Write(VERB_ADDRESS, verb)
	if err != nil {
		return
	}

	run.Machine.Reset(mem)

	if run.Verbose {
		log.Printf("runner: load noun=%v verb=%v", noun, verb)
	}

	return
}

// Tick performs a single step of the machine.
func (run *Runner) Tick() (done bool, err error) {
	// Set machine verbosity
	run.Machine.Verbose = run.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: run.Machine.Steps, Err: err}
		}
	}()

	if run.MaxSteps != 0 && run.Machine.Steps >= run.MaxSteps {
		err = ErrStepBudget
		return
	}

	done, err = run.Machine.Step()
	return
}

// Result returns the value left in the first memory cell.
func (run *Runner) Result() (value int64, err error) {
	return run.Machine.Memory.Read(0)
}

// Search tries every noun and verb in [0, GRID_LIMIT], noun outermost,
// until a run leaves target in the first memory cell, and returns the
// first matching pair.
func (run *Runner) Search(mem machine.Memory, target int64) (noun, verb int64, err error) {
	for noun = 0; noun <= GRID_LIMIT; noun++ {
		for verb = 0; verb <= GRID_LIMIT; verb++ {
			err = run.Load(mem, noun, verb)
			if err != nil {
				return
			}

			for done := false; !done; {
				done, err = run.Tick()
				if err != nil {
					return
				}
			}

			var value int64
			value, err = run.Result()
			if err != nil {
				return
			}
			if value == target {
				return
			}
		}
	}

	err = ErrNoInputs(target)
	return
}

// Answer combines a noun and verb into the conventional reporting form.
func Answer(noun, verb int64) int64 {
	return 100*noun + verb
}

// Run parses a comma-separated program, seeds the noun and verb cells,
// executes to halt, and returns the final value of the first memory cell.
func Run(programText string, noun, verb int64) (value int64, err error) {
	mem, err := machine.ParseMemory(programText)
	if err != nil {
		return
	}

	run := NewRunner()
	err = run.Load(mem, noun, verb)
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = run.Tick()
		if err != nil {
			return
		}
	}

	return run.Result()
}
