package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
)

// printGroups writes one section per group, each headed by its vowel count
// and separated by a blank line.
func printGroups(w io.Writer, groups []vowelGroup) error {
	bw := bufio.NewWriter(w)
	for i, g := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return outputErr(err)
			}
		}
		if _, err := fmt.Fprintf(bw, "=== %d ===\n", g.Count); err != nil {
			return outputErr(err)
		}
		for _, word := range g.Words {
			if _, err := fmt.Fprintln(bw, word); err != nil {
				return outputErr(err)
			}
		}
	}
	return outputErr(bw.Flush())
}

// outputErr maps a broken pipe to ErrOutputClosed.
func outputErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) {
		return fmt.Errorf("%w: %v", ErrOutputClosed, err)
	}
	return err
}

// ignoreSIGPIPE makes writes to a closed stdout fail with EPIPE instead of
// killing the process, so printGroups can stop quietly.
func ignoreSIGPIPE() {
	signal.Ignore(syscall.SIGPIPE)
}
