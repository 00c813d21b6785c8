/*
File    : golox/cmd/lox/main.go
Package main is golox's entry point: REPL by default, a file argument
runs that script, and a supplemental `serve <port>` mode accepts Lox
sessions over TCP (same REPL loop, network connection standing in for
stdin/stdout). --help/--version print and exit 0.

Grounded on the teacher's main/main.go dispatch (flag check, runFile,
startServer/handleClient per-connection REPL), generalized from its
single Evaluator pipeline to golox's lexer/parser/resolver/interpreter
pipeline and its exit-code contract (0 clean, 64 usage error, 65
compile-time error, 70 runtime error) rather than the teacher's
uniform os.Exit(1) on any failure.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/ajmajic/golox/interpreter"
	"github.com/ajmajic/golox/lexer"
	"github.com/ajmajic/golox/parser"
	"github.com/ajmajic/golox/repl"
	"github.com/ajmajic/golox/reporter"
	"github.com/ajmajic/golox/resolver"
)

const version = "v0.1.0"

const banner = `
   ▄████  ▄▄▄       ██▓    ▒█████  ▒██   ██▒
  ██▒ ▀█▒▒████▄    ▓██▒   ▒██▒  ██▒▒▒ █ █ ▒░
 ▒██░▄▄▄░▒██  ▀█▄  ▒██░   ▒██░  ██▒░░  █   ░
 ░▓█  ██▓░██▄▄▄▄██ ▒██░   ▒██   ██░ ░ █ █ ▒
 ░▒▓███▀▒ ▓█   ▓██▒░██████░ ████▓▒░▒██▒ ▒██▒
  ░▒   ▒  ▒▒   ▓▒█░░ ▒░▓  ░ ▒░▒░▒░ ▒▒ ░ ░▓ ░
`

const line = "----------------------------------------------------------------"
const prompt = "golox > "

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return startRepl(os.Stdin, os.Stdout)
	}
	if len(args) > 2 || (len(args) == 2 && args[0] != "serve") {
		redColor.Fprintln(os.Stderr, "Usage: lox [script]")
		return 64
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return 0
	case "--version", "-v":
		showVersion()
		return 0
	case "serve":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "Usage: lox serve <port>")
			return 64
		}
		return startServer(args[1])
	default:
		if len(args) > 1 {
			redColor.Fprintln(os.Stderr, "Usage: lox [script]")
			return 64
		}
		return runFile(args[0])
	}
}

func showHelp() {
	cyanColor.Println("golox - a tree-walking Lox interpreter")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                  Start the interactive REPL")
	yellowColor.Println("  lox <script>.lox     Run a Lox script")
	yellowColor.Println("  lox serve <port>     Serve REPL sessions over TCP")
	yellowColor.Println("  lox --help           Show this help")
	yellowColor.Println("  lox --version        Show version information")
}

func showVersion() {
	fmt.Printf("golox %s\n", version)
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return 64
	}

	rep := reporter.New(os.Stderr)
	interp := interpreter.New(rep)

	if err := interpretSource(string(src), rep, interp); err != nil {
		if rep.HadRuntimeError {
			return 70
		}
		return 65
	}
	if rep.HadError {
		return 65
	}
	return 0
}

func interpretSource(src string, rep *reporter.Reporter, interp *interpreter.Interpreter) error {
	tokens := lexer.NewLexer(src, rep).ScanTokens()
	if rep.HadError {
		return fmt.Errorf("lex error")
	}

	stmts := parser.New(tokens, rep).Parse()
	if rep.HadError {
		return fmt.Errorf("parse error")
	}

	res := resolver.New(rep)
	res.Resolve(stmts)
	if rep.HadError {
		return fmt.Errorf("resolve error")
	}

	interp.Resolve(res.Locals())
	return interp.Interpret(stmts)
}

func startRepl(in *os.File, out *os.File) int {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = home + "/.lox_history"
	}
	r := repl.New(banner, version, line, prompt, historyFile)
	return r.Start(in, out)
}

func startServer(port string) int {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		return 70
	}
	defer listener.Close()
	cyanColor.Printf("golox REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	r := repl.New(banner, version, line, prompt, "")
	r.Start(conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
