package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolSolver_Solve(t *testing.T) {
	s := &toolSolver{cat: sampleCatalog(), strict: true, log: quietLogger()}

	_, out, err := s.solve(context.Background(), nil, solveInput{
		Absent:    "ln",
		Solved:    "_oo__",
		WrongSpot: []string{"se", "", "", "", "g"},
	})
	require.NoError(t, err)
	assert.Equal(t, solveOutput{Total: 1, Groups: []vowelGroup{{Count: 2, Words: []string{"goose"}}}}, out)

	_, _, err = s.solve(context.Background(), nil, solveInput{Solved: "ab"})
	assert.ErrorIs(t, err, ErrInvalidConstraint)
}

func TestToolSolver_Lenient(t *testing.T) {
	s := &toolSolver{cat: sampleCatalog(), strict: true, log: quietLogger()}
	in := solveInput{Solved: "goos_", WrongSpot: []string{"", "", "", "", "xy"}}

	_, _, err := s.solve(context.Background(), nil, in)
	assert.ErrorIs(t, err, ErrInvalidConstraint)

	in.Lenient = true
	_, out, err := s.solve(context.Background(), nil, in)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
}

func TestToolServer_CallTool(t *testing.T) {
	ctx := context.Background()
	server := newToolServer(&toolSolver{cat: sampleCatalog(), strict: true, log: quietLogger()})

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      solveToolName,
		Arguments: map[string]any{"absent": "ad"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	b, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out solveOutput
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []vowelGroup{
		{Count: 2, Words: []string{"goose"}},
		{Count: 0, Words: []string{"glyph"}},
	}, out.Groups)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      solveToolName,
		Arguments: map[string]any{"solved": "ab"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
