/*
File    : invocat/repl/repl.go

Package repl implements the Read-Eval-Print Loop for the Invocat
interpreter: readline-driven line editing and colored output wrapped
around a single persistent interp.Interp. This is an external
collaborator of the core language pipeline (spec's CLI is explicitly
out of scope for the core), built anyway in the teacher's own idiom.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/invocat/invocat/interp"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Invocat!")
	cyanColor.Fprintf(writer, "%s\n", "Type a grammar or an expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '??names' to list bound names, '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop, reading lines from reader and writing
// results and errors to writer, until EOF or the .exit command. seed
// drives the session's interp.Interp so server connections can be
// reproducible per client.
func (r *Repl) Start(reader io.Reader, writer io.Writer, seed string) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	in := interp.New(seed)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		if line == "??names" {
			for _, name := range in.Names() {
				fmt.Fprintln(writer, name)
			}
			continue
		}

		values, err := in.Eval(line)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			continue
		}
		for _, v := range values {
			yellowColor.Fprintf(writer, "%s\n", v)
		}
	}
}
