package ui

import (
	"errors"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ErrNoProgram is returned when the pager is used before SetProgram
var ErrNoProgram = errors.New("program not set")

// PagerOps runs ov over text while the table program is suspended
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content in ov and returns when the pager exits
func (p *PagerOps) Show(content string) error {
	return p.run(strings.NewReader(content))
}

// run hands the terminal to ov, feeding it from r
func (p *PagerOps) run(r io.Reader) error {
	if p.program == nil {
		return ErrNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
