// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/intcode/runner"
	"github.com/ezrec/intcode/source"
)

func main() {
	var program string
	var noun int64
	var verb int64
	var target int64
	var steps int
	var verbose bool

	flag.StringVar(&program, "p", "-", "Program listing to run")
	flag.Int64Var(&noun, "n", 0, "Noun seeded into memory cell 1")
	flag.Int64Var(&verb, "e", 0, "Verb seeded into memory cell 2")
	flag.Int64Var(&target, "t", -1, "Search for the noun/verb pair leaving this value in cell 0")
	flag.IntVar(&steps, "s", 0, "Step budget, 0 for unlimited")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	inf := os.Stdin
	if program != "-" {
		var err error
		inf, err = os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()
	}

	ld := &source.Loader{Verbose: verbose}
	mem, err := ld.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	run := runner.NewRunner()
	run.Verbose = verbose
	run.MaxSteps = steps

	if target >= 0 {
		noun, verb, err := run.Search(mem, target)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		fmt.Println(runner.Answer(noun, verb))
		return
	}

	if err := run.Load(mem, noun, verb); err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	for done := false; !done; {
		done, err = run.Tick()
		if err != nil {
			log.Fatal(err)
		}
	}

	value, err := run.Result()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(value)
}
