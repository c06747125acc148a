/*
File    : invocat/cmd/invocat/main.go

Package main is the entry point for the Invocat interpreter. It provides
three modes of operation:
 1. File mode (default with positional args): evaluate one or more
    grammar files and print each emitted value.
 2. Interactive mode (-i/--interactive, or no arguments at all): a
    readline-driven REPL.
 3. Server mode (serve <port>): one REPL session per TCP connection.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/invocat/invocat/interp"
	"github.com/invocat/invocat/repl"
	"github.com/invocat/invocat/replsrv"
)

const version = "v0.1.0"
const author = "invocat"
const license = "MIT"
const line = "----------------------------------------------------------------"

var banner = `
   ▄█  ███▄▄▄▄    ▄█    █▄     ▄██████▄     ▄████████    ▄████████    ▄████████
  ███  ███▀▀▀██▄ ███    ███   ███    ███   ███    ███   ███    ███   ███    ███
  ███▌ ███   ███ ███    ███   ███    ███   ███    █▀    ███    ███   ███    ███
  ███▌ ███   ███ ███    ███   ███    ███  ▄███▄▄▄       ███    ███  ▄███▄▄▄▄██▀
  ███▌ ███   ███ ███    ███   ███    ███ ▀▀███▀▀▀     ▀███████████ ▀▀███▀▀▀▀▀
  ███  ███   ███ ███    ███   ███    ███   ███    █▄    ███    ███ ▀███████████
  ███  ███   ███ ███    ███   ███    ███   ███    ███   ███    ███   ███    ███
  █▀    ▀█   █▀   ▀██████▀     ▀██████▀    ██████████   ███    █▀    ███    ███
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	seed := flag.StringP("seed", "s", "", "RNG seed string")
	interactive := flag.BoolP("interactive", "i", false, "start an interactive REPL")
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	args := flag.Args()

	if len(args) > 0 && args[0] == "serve" {
		runServe(args, *seed)
		return
	}

	if *interactive || len(args) == 0 {
		r := repl.NewRepl(banner, version, author, line, license, "invocat >>> ")
		r.Start(os.Stdin, os.Stdout, *seed)
		return
	}

	runFiles(args, *seed)
}

func runFiles(paths []string, seed string) {
	in := interp.New(seed)
	for _, path := range paths {
		values, err := in.EvalFile(path)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] could not evaluate %q: %v\n", path, err)
			os.Exit(1)
		}
		for _, v := range values {
			yellowColor.Fprintln(os.Stdout, v)
		}
	}
}

func runServe(args []string, seed string) {
	if len(args) < 2 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. usage: invocat serve <port>\n")
		os.Exit(1)
	}
	port := args[1]
	r := repl.NewRepl(banner, version, author, line, license, "invocat >>> ")
	if err := replsrv.Serve(port, seed, r); err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flag.Usage = func() {
		cyanColor.Println("Invocat - a DSL for generating aleatory text from user-defined grammars")
		cyanColor.Println("")
		cyanColor.Println("USAGE:")
		fmt.Println("  invocat [flags] [file ...]     Evaluate one or more grammar files")
		fmt.Println("  invocat -i                     Start interactive REPL")
		fmt.Println("  invocat serve <port>           Start REPL server on the given port")
		cyanColor.Println("")
		cyanColor.Println("FLAGS:")
		flag.PrintDefaults()
	}
}
