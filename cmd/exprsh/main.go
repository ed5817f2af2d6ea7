// Command exprsh evaluates expr programs from a file, from the command line
// or interactively.
//
//	exprsh [flags] [file]
//
// Without a file or --eval, exprsh reads programs line by line from stdin.
// Bindings made on one line stay visible on the following lines.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	exprscript "github.com/robbyt/go-exprscript"
	"github.com/robbyt/go-exprscript/engines/expr/interp"
	"github.com/robbyt/go-exprscript/engines/expr/parser"
	"github.com/robbyt/go-exprscript/options"
	"github.com/robbyt/go-exprscript/platform/constants"
	"github.com/robbyt/go-exprscript/platform/data"
)

const (
	exitOK    = 0
	exitEval  = 1
	exitUsage = 2
)

type config struct {
	source    string
	file      string
	iterative bool
	logLevel  slog.Level
	defines   []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	var level string
	var showHelp bool

	fs := flag.NewFlagSet("exprsh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.source, "eval", "e", "", "Evaluate the given program and exit")
	fs.BoolVar(&cfg.iterative, "iterative", false, "Use the explicit stack evaluator")
	fs.StringVarP(&level, "log-level", "l", "warn", "Log level: debug, info, warn or error")
	fs.StringArrayVarP(&cfg.defines, "define", "D", nil, "Bind name=program before running, e.g. -D limit=10")
	fs.BoolVarP(&showHelp, "help", "h", false, "Print usage information and quit")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: exprsh [flags] [file]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if showHelp {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if cfg.source != "" {
			return nil, errors.New("--eval and a file are mutually exclusive")
		}
		cfg.file = fs.Arg(0)
	default:
		return nil, errors.New("at most one file can be given")
	}
	return cfg, nil
}

func (c *config) strategy() interp.Strategy {
	if c.iterative {
		return interp.Iterative
	}
	return interp.Recursive
}

// bindings evaluates every -D name=program into an environment.
func (c *config) bindings() (interp.Env, error) {
	env := interp.NewEnv()
	for _, def := range c.defines {
		name, src, ok := strings.Cut(def, "=")
		name = strings.TrimSpace(name)
		if !ok || !parser.IsIdentifier(name) {
			return interp.Env{}, fmt.Errorf("invalid definition %q, expected name=program", def)
		}
		v, err := exprscript.Eval(src)
		if err != nil {
			return interp.Env{}, fmt.Errorf("definition of %s: %w", name, err)
		}
		env = env.Bind(name, v)
	}
	return env, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "exprsh: %s\n", err)
		return exitUsage
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel})
	logger := slog.New(handler).WithGroup("exprsh")

	env, err := cfg.bindings()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "exprsh: %s\n", err)
		return exitUsage
	}

	if cfg.source == "" && cfg.file == "" {
		logger.Debug("starting interactive session", "strategy", cfg.strategy())
		repl(cfg.strategy(), env, stdin, stdout)
		return exitOK
	}

	if err := runProgram(cfg, env, handler, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %s\n", err)
		return exitEval
	}
	return exitOK
}

// runProgram compiles the --eval source or the file and evaluates it once
// with the definitions as static data.
func runProgram(cfg *config, env interp.Env, handler slog.Handler, stdout io.Writer) error {
	static := make(map[string]any, env.Len())
	env.Each(func(name string, v interp.Value) bool {
		static[name] = v.Interface()
		return true
	})

	opts := []options.Option{
		options.WithLogHandler(handler),
		options.WithStrategy(cfg.strategy()),
		options.WithDataProvider(data.NewCompositeProvider(
			data.NewStaticProvider(static),
			data.NewContextProvider(constants.EvalData),
		)),
	}

	var (
		eval *exprscript.EvaluatorWrapper
		err  error
	)
	if cfg.file != "" {
		path, absErr := filepath.Abs(cfg.file)
		if absErr != nil {
			return absErr
		}
		eval, err = exprscript.FromExprFile(path, opts...)
	} else {
		eval, err = exprscript.FromExprString(cfg.source, opts...)
	}
	if err != nil {
		return err
	}

	resp, err := eval.Eval(context.Background())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, resp.Inspect())
	return nil
}

// repl evaluates one program per line. A line that ends inside an
// unfinished expression continues on the next line.
func repl(strategy interp.Strategy, env interp.Env, stdin io.Reader, stdout io.Writer) {
	scanner := bufio.NewScanner(stdin)
	var pending strings.Builder

	prompt := func() {
		if pending.Len() > 0 {
			_, _ = fmt.Fprint(stdout, "... ")
		} else {
			_, _ = fmt.Fprint(stdout, "> ")
		}
	}

	for prompt(); scanner.Scan(); prompt() {
		line := scanner.Text()
		if pending.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit", ":q":
				return
			case ":env":
				_, _ = fmt.Fprintln(stdout, env)
				continue
			}
		}
		pending.WriteString(line)
		pending.WriteByte('\n')

		nodes, err := parser.Parse(pending.String())
		if incomplete(err) && strings.TrimSpace(line) != "" {
			continue
		}
		pending.Reset()
		if err != nil {
			_, _ = fmt.Fprintf(stdout, "error: %s\n", err)
			continue
		}

		var v interp.Value
		v, env, err = interp.RunWithEnv(strategy, nodes, env)
		if err != nil {
			_, _ = fmt.Fprintf(stdout, "error: %s\n", err)
			continue
		}
		if len(nodes) > 0 {
			_, _ = fmt.Fprintln(stdout, v)
		}
	}
	_, _ = fmt.Fprintln(stdout)
}

// incomplete reports whether err is a parse failure at the end of input,
// meaning more text could complete the program.
func incomplete(err error) bool {
	var e *interp.Error
	if !errors.As(err, &e) || e.Kind != interp.ParseFailure {
		return false
	}
	return strings.HasSuffix(e.Detail, "unexpected end of input")
}
