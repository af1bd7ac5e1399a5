// Package fsutil reads puzzle input from the file system.
package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// IOError reports that the input at Path could not be opened or read.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface for IOError.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying file system error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ReadLines opens path and returns its lines. See SplitLines for how line
// endings are treated.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	lines, err := SplitLines(f)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}

// SplitLines reads r to the end and returns its lines without terminators.
// Both "\n" and "\r\n" endings are accepted. Empty lines at the very end of
// the input are dropped; empty lines anywhere else are kept.
func SplitLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
