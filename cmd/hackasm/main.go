// Copyright 2024, Charles Stevenson <brucesdad13@gmail.com>

// Command hackasm translates Hack assembly language into .hack machine code.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brucesdad13/nand2tetris-assembler/hack"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Printf("Usage: %v [-v] <input file> <output file>\n", os.Args[0])
		return
	}

	input := flag.Arg(0)
	output := flag.Arg(1)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	asm := &hack.Assembler{Verbose: verbose}
	prog, err := asm.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if verbose {
		log.Println("symbol table:")
		for symbol, address := range asm.Symbols.Entries() {
			log.Printf("%5d %v\n", address, symbol)
		}
	}

	// The output file is only created once assembly has fully succeeded, so
	// a failed run never leaves a partial .hack file behind.
	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	defer ouf.Close()

	_, err = prog.WriteTo(ouf)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
