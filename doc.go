// Package main implements wordle-solver, a CLI tool that narrows down the
// answer to a five-letter word puzzle from the feedback gathered so far.
//
// # Features
//
//   - Absent, wrong-spot and solved letter constraints
//   - Repeated-letter aware wrong-spot matching
//   - Candidates ranked by the number of distinct vowels they cover
//   - Local or http(s) dictionary sources
//   - An MCP tool server exposing the same solver over stdio
//
// # Usage
//
//	wordle-solver solve [-a CHARS] [-1..-5 CHARS] [-s PATTERN]
//
// Every constraint is optional; run with no arguments, the whole dictionary
// is listed in ranked order. Use "wordle-solver help" for the full usage.
//
// For example, "r" is in the word but not first, "l" is in the word but not
// last, "o" is second and "a" is fourth:
//
//	$ wordle-solver -1 r -5 l -a udiceny -s _o_a_
//	=== 2 ===
//	lobar
//	molar
//	polar
//	solar
//	volar
//
// # Configuration
//
// Configuration is loaded from config.json in the current directory, the
// path in WORDLE_SOLVER_CONFIG, or the --config flag. A .env file in the
// working directory is read first.
package main
