package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"

	"github.com/Dicklesworthstone/mediaband/pkg/config"
)

// defaultBreakpointLines pre-fills the wizard with a common breakpoint scale.
const defaultBreakpointLines = "sm: 0\nmd: 768\nlg: 1024\nxl: 1440"

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing config")
	fs.Parse(args)

	if _, err := os.Stat(config.DefaultFileName); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", config.DefaultFileName)
	}

	lines := defaultBreakpointLines
	cfg := config.Default()
	openBrowser := cfg.Preview.OpenBrowser

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Breakpoints").
				Description("One per line, name: width-in-px. Widths must be distinct.").
				Value(&lines),
			huh.NewInput().
				Title("Output directory").
				Value(&cfg.Output.Dir),
			huh.NewConfirm().
				Title("Open browser when previewing?").
				Value(&openBrowser),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	breakpoints, err := parseBreakpointLines(lines)
	if err != nil {
		return err
	}
	cfg.Breakpoints = breakpoints
	cfg.Preview.OpenBrowser = openBrowser

	if err := cfg.WriteFile(config.DefaultFileName); err != nil {
		return err
	}
	fmt.Printf("Wrote %s with %d breakpoints\n", config.DefaultFileName, len(breakpoints))
	fmt.Println("Next: run 'mband generate', then 'mband preview'")
	return nil
}

// parseBreakpointLines parses the wizard's free-form "name: width" lines.
func parseBreakpointLines(text string) (map[string]int, error) {
	out := make(map[string]int)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, widthStr, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("bad breakpoint line %q (expected name: width)", line)
		}
		name = strings.TrimSpace(name)
		width, err := strconv.Atoi(strings.TrimSpace(widthStr))
		if err != nil {
			return nil, fmt.Errorf("bad width in line %q: %w", line, err)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("breakpoint %q defined twice", name)
		}
		out[name] = width
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no breakpoints entered")
	}
	return out, nil
}

// copyToClipboard pipes text to the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
