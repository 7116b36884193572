package main

// This is a calculator for arithmetic expressions written in Go.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ltungv/treecalc/internal/calc"
)

type CLI struct {
	Exprs     []string `arg:"" optional:"" help:"Expressions to evaluate."`
	File      string   `short:"f" help:"Evaluate every non-empty line of a file."`
	Tokens    bool     `help:"Print the normalized tokens before parsing."`
	Tree      bool     `help:"Draw the expression tree before evaluating it."`
	Prefix    bool     `help:"Print the expression in prefix notation."`
	Dump      bool     `help:"Dump the scanned tokens."`
	CacheSize int      `default:"128" help:"Number of results remembered between lines."`
	NoColor   bool     `help:"Do not color error messages."`
	Debug     bool     `help:"Log every stage of the evaluation."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("treecalc"),
		kong.Description("Evaluate arithmetic expressions with + - * / and parentheses."),
		kong.UsageOnError(),
	)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cli.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	reporter := calc.NewColorReporter(os.Stderr)
	if cli.NoColor {
		reporter = calc.NewSimpleReporter(os.Stderr)
	}

	r, err := newRunner(&cli, os.Stdout, reporter, log)
	exitOnError(err, 64)

	switch {
	case cli.File != "":
		runFile(cli.File, r)
	case len(cli.Exprs) != 0:
		for _, src := range cli.Exprs {
			r.run(src)
		}
	default:
		runPrompt(r)
		return
	}
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

type runner struct {
	cli      *CLI
	out      io.Writer
	reporter calc.Reporter
	log      *logrus.Logger
	cache    *calc.Cache
	opts     []calc.Option
	printer  calc.Printer
}

func newRunner(cli *CLI, out io.Writer, reporter calc.Reporter, log *logrus.Logger) (*runner, error) {
	var opts []calc.Option
	if cli.Tokens {
		opts = append(opts, calc.WithEcho(out))
	}
	cache, err := calc.NewCache(cli.CacheSize)
	if err != nil {
		return nil, err
	}
	return &runner{cli: cli, out: out, reporter: reporter, log: log, cache: cache, opts: opts}, nil
}

// inspects reports whether the expression itself has to be shown, in which
// case the cache cannot be used. Echoed tokens count too, since a cached
// result would skip scanning.
func (r *runner) inspects() bool {
	return r.cli.Tokens || r.cli.Tree || r.cli.Prefix || r.cli.Dump
}

func (r *runner) run(source string) {
	entry := r.log.WithField("source", source)
	if !r.inspects() {
		result, err := r.cache.Eval(source)
		if err != nil {
			r.reporter.Report(err)
			return
		}
		entry.WithField("cached", r.cache.Len()).Debug("evaluated")
		fmt.Fprintln(r.out, stringify(result))
		return
	}

	expr, err := calc.NewExpression(source, r.opts...)
	if err != nil {
		r.reporter.Report(err)
		return
	}
	entry.WithFields(logrus.Fields{
		"tokens": len(expr.Tokens()),
		"nodes":  expr.Tree().Size(),
		"height": expr.Tree().Height(),
	}).Debug("parsed")

	if r.cli.Dump {
		repr.New(r.out).Println(expr.Tokens())
	}
	if r.cli.Prefix {
		prefix, err := r.printer.Prefix(expr.Tree())
		if err != nil {
			r.reporter.Report(err)
			return
		}
		fmt.Fprintln(r.out, prefix)
	}
	if r.cli.Tree {
		if err := expr.Tree().Fprint(r.out); err != nil {
			r.reporter.Report(err)
			return
		}
	}

	result, err := expr.Calculate()
	if err != nil {
		r.reporter.Report(err)
		return
	}
	entry.Debug("evaluated")
	fmt.Fprintln(r.out, stringify(result))
}

// Run the calculator in REPL mode
func runPrompt(r *runner) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		r.run(s.Text())
		r.reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

// Evaluate every line of the given file
func runFile(fpath string, r *runner) {
	f, err := os.Open(fpath)
	exitOnError(errors.Wrapf(err, "opening %s", fpath), 1)
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		r.run(s.Text())
	}
	exitOnError(errors.Wrapf(s.Err(), "reading %s", fpath), 1)
}

func stringify(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
