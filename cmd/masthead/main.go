package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rovelle/masthead/pkg/config"
	"github.com/rovelle/masthead/pkg/menu"
	"github.com/rovelle/masthead/pkg/page"
	"github.com/rovelle/masthead/pkg/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (watched for changes)")
	menuPath := flag.String("menu", "", "Path to a YAML menu definition")
	pagesDir := flag.String("pages", "", "Directory of .md pages overriding the built-ins")
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: masthead [options]")
		fmt.Println("\nA responsive navigation demo in your terminal.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("masthead version 0.1.0")
		os.Exit(0)
	}

	if os.Getenv("MASTHEAD_DEBUG") != "" {
		f, err := tea.LogToFile("masthead.log", "masthead")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	// Refuse to start on something that is not a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("masthead needs an interactive terminal.")
		os.Exit(1)
	}

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("Warning: using default config: %v", err)
		}
		cfg = loaded
	}

	m := menu.Default()
	if *menuPath != "" {
		loaded, err := menu.Load(*menuPath)
		if err != nil {
			fmt.Printf("Error loading menu: %v\n", err)
			os.Exit(1)
		}
		m = loaded
	}

	store := page.NewStore()
	if *pagesDir != "" {
		if err := store.LoadDir(*pagesDir); err != nil {
			log.Printf("Warning: using built-in pages: %v", err)
		}
	}

	theme := ui.DefaultTheme(lipgloss.DefaultRenderer())
	app := ui.NewApp(cfg, m, store, theme)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Live-reload the config file; changes land as messages in the program.
	if *configPath != "" {
		w, err := config.Watch(*configPath, func(c config.Config) {
			p.Send(ui.ConfigReloadedMsg{Config: c})
		})
		if err != nil {
			log.Printf("Warning: config watching disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running masthead: %v\n", err)
		os.Exit(1)
	}
}
