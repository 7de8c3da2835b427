// ABOUTME: CLI entry point for codeview-demo: loads a file (or stdin) into
// ABOUTME: a Document and drives it through a minimal Bubble Tea host

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/codeview-go/internal/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		src      string
		filename string
	)
	if len(os.Args) > 1 {
		filename = os.Args[1]
		b, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}
		src = string(b)
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		src = string(b)
	}

	log.Debug("starting codeview-demo on %q (%d bytes)", filename, len(src))

	model := newModel(src, filename)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
