package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	limbint "github.com/shabbyrobe/go-limbint"
)

// limbcalc evaluates a single binary expression over arbitrary-precision
// integers and optionally dumps the limb representation of the operands and
// the result. It is mostly useful for checking what the limbs of a value
// look like when chasing down a failing fuzz case.

const usage = "[OPTIONS] <a> <op> <b>\n\n" +
	"op is one of: + - * / % cmp & | ^ << >>"

var log = slog.Disabled

var errUsage = errors.New("usage")

type config struct {
	Radix    int    `short:"r" long:"radix" description:"radix of the operands and the result (2-36)"`
	Dump     bool   `short:"d" long:"dump" description:"dump the limbs of the operands and the result"`
	LogLevel string `long:"loglevel" description:"logging level {trace, debug, info, warn, error, critical, off}"`
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config{
		Radix:    10,
		LogLevel: "info",
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = usage
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return nil
		}
		fmt.Fprintln(stderr, err)
		return errUsage
	}
	if len(rest) != 3 {
		parser.WriteHelp(stderr)
		return errUsage
	}

	backend := slog.NewBackend(stderr)
	logger := backend.Logger("CALC")
	lvl, ok := slog.LevelFromString(cfg.LogLevel)
	if !ok {
		fmt.Fprintf(stderr, "unknown log level %q\n", cfg.LogLevel)
		return errUsage
	}
	logger.SetLevel(lvl)
	log = logger

	if cfg.Radix < 2 || cfg.Radix > 36 {
		fmt.Fprintf(stderr, "radix %d out of range\n", cfg.Radix)
		return errUsage
	}

	a, err := limbint.IntFromStringRadix(rest[0], cfg.Radix)
	if err != nil {
		return err
	}
	b, err := limbint.IntFromStringRadix(rest[2], cfg.Radix)
	if err != nil {
		return err
	}
	op := rest[1]

	log.Debugf("evaluating %s %s %s (%d and %d bits)", a, op, b, a.BitLen(), b.BitLen())

	result, err := eval(a, op, b)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, result.Text(cfg.Radix))

	if cfg.Dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		for _, v := range []struct {
			name string
			v    limbint.Int
		}{{"a", a}, {"b", b}, {"result", result}} {
			limbs, sign := v.v.Raw()
			fmt.Fprintf(stdout, "%s: sign=%#08x limbs=", v.name, sign)
			dumper.Fdump(stdout, limbs)
		}
	}

	return nil
}

func eval(a limbint.Int, op string, b limbint.Int) (limbint.Int, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*", "x":
		return a.Mul(b), nil
	case "/":
		return a.Quo(b)
	case "%":
		return a.Mod(b)
	case "cmp":
		return limbint.IntFromInt(a.Cmp(b)), nil
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "<<", ">>":
		n, ok := b.Int64()
		if !ok || n < 0 {
			return limbint.Int{}, fmt.Errorf("shift count %s out of range", b)
		}
		log.Tracef("shifting by %d limbs and %d bits", n/32, n%32)
		if op == "<<" {
			return a.Lsh(uint(n)), nil
		}
		return a.Rsh(uint(n)), nil
	default:
		return limbint.Int{}, fmt.Errorf("unknown op %q", op)
	}
}
