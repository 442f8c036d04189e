// cmd/bignum/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"bignum/cmd/bignum/commands"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

const version = "0.1.0"

// commandAliases mirrors common shorthand the way a seasoned CLI user
// expects: single letters for add, sub, mul, div and pow; mod and the
// remaining commands are reached by their full names only.
var commandAliases = map[string]string{
	"a": "add",
	"s": "sub",
	"m": "mul",
	"d": "div",
	"p": "pow",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run holds main's logic separately so cmd/bignum's own test binary can
// drive it in-process (see main_test.go) instead of only ever running as a
// spawned child process.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 1
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}
	rest := args[1:]

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		showUsage()
		return 0
	}
	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		showVersion()
		return 0
	}

	// Every dispatched invocation gets a request id in its log line, so
	// separate runs can be correlated in captured output.
	reqID := uuid.New()
	fmt.Fprintf(os.Stderr, "[%s] bignum %s\n", reqID, strings.Join(args, " "))

	var err error
	switch cmd {
	case "add":
		err = commands.AddCommand(rest)
	case "sub":
		err = commands.SubCommand(rest)
	case "mul":
		err = commands.MulCommand(rest)
	case "div":
		err = commands.DivCommand(rest)
	case "mod":
		err = commands.ModCommand(rest)
	case "pow":
		err = commands.PowCommand(rest)
	case "rsa":
		err = dispatchRSA(rest)
	case "parallel":
		err = commands.ParallelCommand(rest)
	case "bench":
		err = dispatchBench(rest)
	default:
		fmt.Fprintf(os.Stderr, "bignum: unknown command %q\n\n", args[0])
		showUsage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bignum %s [%s]: %v\n", cmd, reqID, err)
		return 1
	}
	return 0
}

func dispatchRSA(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("rsa: expected a subcommand (encrypt, decrypt)")
	}
	switch args[0] {
	case "encrypt":
		return commands.RSAEncryptCommand(args[1:])
	case "decrypt":
		return commands.RSADecryptCommand(args[1:])
	default:
		return fmt.Errorf("rsa: unknown subcommand %q", args[0])
	}
}

func dispatchBench(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("bench: expected a subcommand (mul)")
	}
	switch args[0] {
	case "mul":
		return commands.BenchMulCommand(args[1:])
	default:
		return fmt.Errorf("bench: unknown subcommand %q", args[0])
	}
}

func showUsage() {
	heading := "bignum - fixed-capacity multi-precision arithmetic and RSA block codec"
	if isatty.IsTerminal(os.Stdout.Fd()) {
		heading = "\033[1m" + heading + "\033[0m"
	}
	fmt.Println(heading)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bignum add A B              Compute A + B                (alias: a)")
	fmt.Println("  bignum sub A B              Compute A - B, A >= B        (alias: s)")
	fmt.Println("  bignum mul A B              Compute A * B                (alias: m)")
	fmt.Println("  bignum div A B              Compute floor(A / B)         (alias: d)")
	fmt.Println("  bignum mod A B              Compute A mod B")
	fmt.Println("  bignum pow A E M            Compute A^E mod M            (alias: p)")
	fmt.Println()
	fmt.Println("  bignum rsa encrypt N E TEXT [--constant]")
	fmt.Println("                              PKCS#1 v1.5 type-2 encrypt TEXT under (N, E)")
	fmt.Println("  bignum rsa decrypt N E HEX  Decrypt a hex ciphertext under (N, E)")
	fmt.Println()
	fmt.Println("  bignum parallel COUNT N E   Encrypt COUNT demo messages concurrently")
	fmt.Println("  bignum bench mul LIMBS      Cross-check and time a LIMBS-limb multiply")
	fmt.Println()
	fmt.Println("  bignum help                 Show this message")
	fmt.Println("  bignum version              Show version information")
	fmt.Println()
	fmt.Println("All numeric arguments are base-10 strings; there is no arbitrary growth — ")
	fmt.Println("every operand is sized to a fixed limb capacity up front.")
}

func showVersion() {
	fmt.Printf("bignum version %s\n", version)
}
