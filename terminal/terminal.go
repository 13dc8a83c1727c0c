package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the game is started without an interactive terminal
var ErrNotTerminal = errors.New("not a terminal")

// RequireTTY fails unless fd is an interactive terminal with a usable size
func RequireTTY(fd int) error {
	if !term.IsTerminal(fd) {
		return fmt.Errorf("fd %d: %w", fd, ErrNotTerminal)
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("terminal size %dx%d: %w", w, h, ErrNotTerminal)
	}
	return nil
}

// Open creates and initialises a tcell screen in the given color mode
func Open(mode ColorMode) (tcell.Screen, error) {
	if mode == ColorMode256 {
		// tcell reads this before building its color table
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// EmergencyReset restores the terminal after a panic, without a live screen
func EmergencyReset(w io.Writer) {
	writeResetSequences(w)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

func writeResetSequences(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)
}
