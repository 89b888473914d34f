package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/mediaband/pkg/config"
	"github.com/Dicklesworthstone/mediaband/pkg/export"
	"github.com/Dicklesworthstone/mediaband/pkg/ui"
	"github.com/Dicklesworthstone/mediaband/pkg/watcher"
)

const version = "0.1.0"

const usage = `Usage: mband <command> [options]

A breakpoint media-query toolkit: compiles named width breakpoints into CSS
show/hide rules and render-admission data.

Commands:
  init      Create a mediaband.yaml interactively
  generate  Write the CSS/JSON/diagram bundle
  preview   Serve the generated bundle locally
  watch     Regenerate the bundle whenever the config changes
  inspect   Interactive viewport simulator
  explain   Print a cheat sheet of every compiled query

Run 'mband <command> -h' for command options.`

func main() {
	flag.Usage = func() { fmt.Println(usage) }
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Println("mband version " + version)
		os.Exit(0)
	}
	args := flag.Args()
	if *help || len(args) == 0 {
		fmt.Println(usage)
		os.Exit(0)
	}

	var err error
	switch args[0] {
	case "init":
		err = runInit(args[1:])
	case "generate":
		err = runGenerate(args[1:])
	case "preview":
		err = runPreview(args[1:])
	case "watch":
		err = runWatch(args[1:])
	case "inspect":
		err = runInspect(args[1:])
	case "explain":
		err = runExplain(args[1:])
	default:
		fmt.Printf("Unknown command %q\n\n%s\n", args[0], usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the -config flag shared by most commands.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load("")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to mediaband.yaml")
	out := fs.String("out", "", "Output directory (overrides config)")
	copyCSS := fs.Bool("copy", false, "Also copy the generated CSS to the clipboard")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	dir := cfg.Output.Dir
	if *out != "" {
		dir = *out
	}
	if err := export.WriteBundle(context.Background(), dir, reg, cfg.Output.Formats); err != nil {
		return err
	}
	fmt.Printf("Wrote %s bundle for %d breakpoints (%d rules)\n", dir, reg.Len(), len(reg.RuleSets()))

	if *copyCSS {
		if err := copyToClipboard(export.Stylesheet(reg)); err != nil {
			fmt.Printf("Could not copy CSS to clipboard: %v\n", err)
		} else {
			fmt.Println("Copied CSS to clipboard")
		}
	}
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to mediaband.yaml")
	port := fs.Int("port", 0, "Port to serve on (0 auto-selects)")
	noOpen := fs.Bool("no-open", false, "Do not open the browser")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	p := *port
	if p == 0 {
		p = cfg.Preview.Port
	}
	open := cfg.Preview.OpenBrowser && !*noOpen
	return export.StartPreview(cfg.Output.Dir, p, open)
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to mediaband.yaml")
	fs.Parse(args)

	path := *cfgPath
	if path == "" {
		path = config.DefaultFileName
	}

	regenerate := func() {
		cfg, err := config.LoadFile(path)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}
		reg, err := cfg.Registry()
		if err != nil {
			fmt.Printf("Breakpoint error: %v\n", err)
			return
		}
		if err := export.WriteBundle(context.Background(), cfg.Output.Dir, reg, cfg.Output.Formats); err != nil {
			fmt.Printf("Generate error: %v\n", err)
			return
		}
		fmt.Printf("Regenerated %s (%d rules)\n", cfg.Output.Dir, len(reg.RuleSets()))
	}

	// Generate once up front so the watcher starts from a valid bundle.
	regenerate()
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", path)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := watcher.Watch(ctx, path, 0, regenerate)
	if err == context.Canceled {
		return nil
	}
	return err
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to mediaband.yaml")
	fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	m := ui.NewInspector(reg, cfg.ServerRenderNames(reg))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
