package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Command names.
const (
	cmdSolve = "solve"
	cmdMCP   = "mcp"
	cmdInit  = "init"
	cmdHelp  = "help"
)

func main() {
	_ = godotenv.Load()
	ignoreSIGPIPE()
	log := newLogger(zerolog.WarnLevel)
	if err := run(context.Background(), log, os.Args[1:], os.Stdout); err != nil {
		code := exitCode(err)
		if !errors.Is(err, ErrOutputClosed) {
			log.err(err.Error())
			if errors.Is(err, ErrDictionaryUnavailable) {
				_, _ = fmt.Fprintln(os.Stderr, "Please install a dictionary or fix its path.")
			}
		}
		os.Exit(code)
	}
}

func run(ctx context.Context, log *logger, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return runSolve(ctx, log, nil, stdout)
	}

	switch args[0] {
	case cmdHelp, "-h", "--help":
		printUsage(stdout)
		return nil
	case cmdSolve:
		return runSolve(ctx, log, args[1:], stdout)
	case cmdMCP:
		return runMCP(ctx, log, args[1:])
	case cmdInit:
		return runInit(args[1:], stdout)
	default:
		if strings.HasPrefix(args[0], "-") {
			return runSolve(ctx, log, args, stdout)
		}
		printUsage(os.Stderr)
		return &exitError{Code: exitUsage, Err: fmt.Errorf("unknown command: %s", args[0])}
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "wordle-solver: five-letter word puzzle helper")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  wordle-solver solve [-a CHARS] [-1..-5 CHARS] [-s PATTERN] [--dict PATH|URL] [--lenient]")
	_, _ = fmt.Fprintln(w, "  wordle-solver mcp   [--config PATH] [--dict PATH|URL]")
	_, _ = fmt.Fprintln(w, "  wordle-solver init  [--config PATH] [--force]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Solve options:")
	_, _ = fmt.Fprintln(w, "  -a, --absent CHARS         Letters known to be absent from the word")
	_, _ = fmt.Fprintln(w, "  -N, --wrong-spot-N CHARS   Letters in the word but not at position N (1-5)")
	_, _ = fmt.Fprintln(w, "  -s, --solved PATTERN       Five characters, solved letters or _ for unknown")
	_, _ = fmt.Fprintln(w, "  --config PATH              Path to config.json")
	_, _ = fmt.Fprintln(w, "  --dict PATH|URL            Dictionary to search")
	_, _ = fmt.Fprintln(w, "  --lenient                  Allow more wrong-spot letters than unsolved positions")
	_, _ = fmt.Fprintln(w, "  --log-level LEVEL          debug, info, warn or error")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  WORDLE_SOLVER_CONFIG  Config path")
	_, _ = fmt.Fprintln(w, "  WORDLE_SOLVER_DICT    Dictionary path or URL")
	_, _ = fmt.Fprintln(w, "  NO_COLOR              Disable colored output")
}

// commonFlags are shared by the commands that load a dictionary.
type commonFlags struct {
	configPath string
	dictPath   string
	logLevel   string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "config path")
	fs.StringVar(&c.dictPath, "dict", "", "dictionary path or URL")
	fs.StringVar(&c.logLevel, "log-level", "", "log level")
}

// load reads the config and applies flag overrides to it and to log.
func (c *commonFlags) load(log *logger) (appConfig, error) {
	path := configPath(c.configPath)
	cfg, err := loadConfig(path)
	if err != nil {
		return appConfig{}, err
	}
	if c.dictPath != "" {
		cfg.Dictionary = c.dictPath
	}
	if c.logLevel != "" {
		cfg.LogLevel = strings.ToLower(c.logLevel)
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return appConfig{}, &exitError{Code: exitUsage, Err: err}
	}
	log.setLevel(level)
	log.debugf("config: path=%s dictionary=%s vowels=%s strict=%v", path, cfg.Dictionary, cfg.Vowels, cfg.Strict)
	return cfg, nil
}

func runSolve(ctx context.Context, log *logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(cmdSolve, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		common  commonFlags
		c       constraints
		lenient bool
	)
	common.register(fs)
	fs.StringVar(&c.Absent, "a", "", "absent letters")
	fs.StringVar(&c.Absent, "absent", "", "absent letters")
	fs.StringVar(&c.Solved, "s", "", "solved pattern")
	fs.StringVar(&c.Solved, "solved", "", "solved pattern")
	c.WrongSpot = make([]string, defaultWordLength)
	for i := range c.WrongSpot {
		fs.StringVar(&c.WrongSpot[i], fmt.Sprint(i+1), "", "wrong-spot letters")
		fs.StringVar(&c.WrongSpot[i], wrongSpotField(i), "", "wrong-spot letters")
	}
	fs.BoolVar(&lenient, "lenient", false, "skip the unsolved position check")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return nil
		}
		return &exitError{Code: exitUsage, Err: err}
	}
	if fs.NArg() > 0 {
		return &exitError{Code: exitUsage, Err: fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}

	cfg, err := common.load(log)
	if err != nil {
		return err
	}
	r := cfg.rules()
	k, err := newKnowledge(r, c, cfg.Strict && !lenient)
	if err != nil {
		return err
	}
	log.debugf("knowledge: %s possible=%q", k, k.possible().String())

	dict := resolveDictionaryPath(cfg.Dictionary, executableDir())
	cat, err := openCatalog(ctx, dict, r, cfg, log)
	if err != nil {
		return err
	}

	words := solve(cat, k)
	log.debugf("candidates: %d of %d", len(words), cat.len())
	if err := printGroups(stdout, groupByVowels(words, r.Vowels)); err != nil {
		if errors.Is(err, ErrOutputClosed) {
			log.debug("output closed early")
			return &exitError{Code: exitFailure, Err: err}
		}
		return err
	}
	return nil
}

func runInit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(cmdInit, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		path  string
		force bool
	)
	fs.StringVar(&path, "config", "", "config path")
	fs.BoolVar(&force, "force", false, "overwrite an existing config")
	if err := fs.Parse(args); err != nil {
		return &exitError{Code: exitUsage, Err: err}
	}
	path = configPath(path)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := saveConfig(path, defaultConfig()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}
