package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/mediaband/pkg/export"
)

func runExplain(args []string) error {
	fs := flag.NewFlagSet("explain", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to mediaband.yaml")
	raw := fs.Bool("raw", false, "Print plain markdown without terminal styling")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	md := export.Markdown(reg)
	if *raw || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return nil
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fall back to plain markdown rather than failing the command.
		fmt.Print(md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return nil
	}
	fmt.Print(out)
	return nil
}
