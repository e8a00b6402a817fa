package main

import (
	"fmt"
	"os"
	"strings"

	"termflip/othello"
)

// loadPosition reads a start position written as one row per line, using
// X for Black, O for White and . for empty cells. Blank lines and lines
// starting with # are ignored.
func loadPosition(path string) (*othello.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read position: %w", err)
	}

	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}

	board, err := othello.ParseBoard(rows...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return board, nil
}
