/*
File    : invocat/replsrv/server.go

Package replsrv exposes the REPL over TCP: one accepted connection gets
its own Invocat session, a direct generalization of the teacher's
"server <port>" mode to Invocat's pipeline. It is not part of the core
language contract — a convenience external collaborator, same as repl.
*/
package replsrv

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/invocat/invocat/repl"
)

var cyanColor = color.New(color.FgCyan)
var redColor = color.New(color.FgRed)

// Serve listens on port and runs one repl.Repl session per accepted
// connection, each seeded from seed. It blocks until listener setup
// fails or the caller kills the process.
func Serve(port, seed string, r *repl.Repl) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("replsrv: listen on :%s: %w", port, err)
	}
	defer listener.Close()

	cyanColor.Printf("Invocat REPL server listening on :%s\n", port)
	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept: %v\n", err)
			continue
		}
		go handleClient(conn, seed, r)
	}
}

func handleClient(conn net.Conn, seed string, r *repl.Repl) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	r.Start(conn, conn, seed)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
