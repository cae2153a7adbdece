// Package godice parses command line configuration and runs the dice
// notation interpreter.
package godice

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/caarlos0/env/v11"
	"github.com/fatih/color"

	"github.com/letung3105/dicelang/godice/dice"
)

var (
	valueColor = color.New(color.Bold, color.FgGreen)
	textColor  = color.New(color.Faint)
)

// Config holds the interpreter configuration gathered from the environment
// and the command line. Flags win over environment variables.
type Config struct {
	Seed    int64  `env:"GODICE_SEED"`
	Expr    string `env:"GODICE_EXPR"`
	NoColor bool   `env:"GODICE_NO_COLOR"`

	Help       bool
	ScriptPath string
}

// ParseConfig reads the environment and the command line. The first element
// of args names the program, like os.Args.
func ParseConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	opts, optind, err := getopt.Getopts(args, "s:e:nh")
	if err != nil {
		return Config{}, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 's':
			seed, err := strconv.ParseInt(opt.Value, 10, 64)
			if err != nil {
				return Config{}, fmt.Errorf("invalid seed %q", opt.Value)
			}
			cfg.Seed = seed
		case 'e':
			cfg.Expr = opt.Value
		case 'n':
			cfg.NoColor = true
		case 'h':
			cfg.Help = true
		}
	}
	rest := args[optind:]
	if len(rest) > 1 {
		return Config{}, errors.New("too many arguments")
	}
	if len(rest) == 1 {
		cfg.ScriptPath = rest[0]
	}
	return cfg, nil
}

// Usage prints the command line help.
func Usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: godice [-n] [-s seed] [-e expr] [script]")
	fmt.Fprintln(out, "  -s seed  seed the dice rolls, 0 rolls differently every run")
	fmt.Fprintln(out, "  -e expr  evaluate one expression and exit")
	fmt.Fprintln(out, "  -n       disable colored output")
	fmt.Fprintln(out, "  -h       print this help")
	fmt.Fprintln(out, "environment: GODICE_SEED, GODICE_EXPR, GODICE_NO_COLOR")
}

// Run evaluates one expression, a script, or lines read interactively from
// stdin, and returns the process exit code.
func Run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) int {
	if cfg.Help {
		Usage(stdout)
		return 0
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	session := dice.NewSession()
	if cfg.Seed != 0 {
		session = dice.NewSessionWithRoller(dice.NewRollerFromSeed(cfg.Seed))
	}
	reporter := dice.NewSimpleReporter(stderr)
	switch {
	case cfg.Expr != "":
		evalLine(session, reporter, stdout, cfg.Expr)
		return exitCode(reporter)
	case cfg.ScriptPath != "":
		return runScript(cfg.ScriptPath, session, reporter, stdout, stderr)
	default:
		return runPrompt(session, reporter, stdin, stdout, stderr)
	}
}

// evalLine prints the value and the text of one evaluation, or hands the
// error to the reporter.
func evalLine(session *dice.Session, reporter dice.Reporter, out io.Writer, source string) {
	result, err := session.Eval(source)
	if err != nil {
		reporter.Report(err)
		return
	}
	fmt.Fprintf(
		out,
		"%s %s\n",
		valueColor.Sprint(result.Value),
		textColor.Sprintf("(%s)", result.Text),
	)
}

// runScript evaluates a file line by line, sharing one session so earlier
// assignments stay visible, and stops at the first line that fails.
func runScript(path string, session *dice.Session, reporter dice.Reporter, stdout, stderr io.Writer) int {
	bytes, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, line := range strings.Split(string(bytes), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(session, reporter, stdout, line)
		if code := exitCode(reporter); code != 0 {
			return code
		}
	}
	return 0
}

// runPrompt runs the interpreter in REPL mode
func runPrompt(session *dice.Session, reporter dice.Reporter, stdin io.Reader, stdout, stderr io.Writer) int {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			break
		}
		evalLine(session, reporter, stdout, scanner.Text())
		reporter.Reset()
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// exitCode follows the interpreter exit convention, syntax errors beat
// runtime errors.
func exitCode(reporter dice.Reporter) int {
	if reporter.HadError() {
		return 65
	}
	if reporter.HadRuntimeError() {
		return 70
	}
	return 0
}
