package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "wordle-solver"
	serverVersion = "1.0.0"
	solveToolName = "solve_wordle"
)

// solveInput is the argument object of the solve tool.
type solveInput struct {
	Absent    string   `json:"absent,omitempty" jsonschema:"letters known not to be in the word"`
	WrongSpot []string `json:"wrong_spot,omitempty" jsonschema:"one entry per position: letters in the word but not at that position"`
	Solved    string   `json:"solved,omitempty" jsonschema:"five characters, solved letters or _ for unknown, e.g. _o_a_"`
	Lenient   bool     `json:"lenient,omitempty" jsonschema:"allow more wrong-spot letters than unsolved positions"`
}

// solveOutput is the structured result of the solve tool.
type solveOutput struct {
	Total  int          `json:"total"`
	Groups []vowelGroup `json:"groups"`
}

// toolSolver answers tool calls against a catalog loaded once at startup.
type toolSolver struct {
	cat    *catalog
	strict bool
	log    *logger
}

func (s *toolSolver) solve(ctx context.Context, req *mcp.CallToolRequest, in solveInput) (*mcp.CallToolResult, solveOutput, error) {
	c := constraints{Absent: in.Absent, WrongSpot: in.WrongSpot, Solved: in.Solved}
	k, err := newKnowledge(s.cat.rules, c, s.strict && !in.Lenient)
	if err != nil {
		return nil, solveOutput{}, err
	}
	words := solve(s.cat, k)
	s.log.debugf("tool call: %s candidates=%d", k, len(words))
	groups := groupByVowels(words, s.cat.rules.Vowels)
	if groups == nil {
		groups = []vowelGroup{}
	}
	return nil, solveOutput{Total: len(words), Groups: groups}, nil
}

func newToolServer(s *toolSolver) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        solveToolName,
		Description: "List five-letter words consistent with puzzle feedback, grouped by distinct vowel count, most vowels first.",
	}, s.solve)
	return server
}

// runMCP serves the solve tool over stdio until the client disconnects.
func runMCP(ctx context.Context, log *logger, args []string) error {
	fs := flag.NewFlagSet(cmdMCP, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return &exitError{Code: exitUsage, Err: err}
	}

	cfg, err := common.load(log)
	if err != nil {
		return err
	}
	r := cfg.rules()
	dict := resolveDictionaryPath(cfg.Dictionary, executableDir())
	cat, err := openCatalog(ctx, dict, r, cfg, log)
	if err != nil {
		return err
	}

	log.infof("serving %s over stdio: words=%d", solveToolName, cat.len())
	server := newToolServer(&toolSolver{cat: cat, strict: cfg.Strict, log: log})
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
