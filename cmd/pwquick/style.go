package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"pwquick/internal/config"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

// checkState is the outcome shown on a doctor line.
type checkState int

const (
	checkInfo checkState = iota
	checkPass
	checkFail
)

func (s checkState) label() string {
	switch s {
	case checkPass:
		return "OK"
	case checkFail:
		return "FAIL"
	default:
		return "INFO"
	}
}

func (s checkState) color() string {
	switch s {
	case checkPass:
		return ansiGreen
	case checkFail:
		return ansiRed
	default:
		return ansiBlue
	}
}

// renderStatusLine lays out "  PipeWire socket:     [OK] /run/user/1000/pipewire-0".
func renderStatusLine(label string, state checkState, detail string, colorize bool) string {
	status := "[" + state.label() + "]"
	if detail != "" {
		status += " " + detail
	}
	return paint(fmt.Sprintf("  %-20s %s", label+":", status), state.color(), colorize)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := "== " + strings.TrimSpace(title) + " =="
	return []string{
		paint(line, ansiBlue, colorize),
		paint(strings.Repeat("-", len(line)), ansiBlue, colorize),
	}
}

func paint(s, color string, colorize bool) string {
	if !colorize || s == "" {
		return s
	}
	return color + s + ansiReset
}

// shouldColorize applies display.color: "always" and "never" are absolute,
// "auto" colors only a terminal and honours NO_COLOR.
func shouldColorize(writer io.Writer, mode string) bool {
	if mode == config.ColorAlways || mode == config.ColorNever {
		return mode == config.ColorAlways
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return false
}
