// Package main implements the entry point for Folio, a portfolio page
// that runs in the terminal.
//
// This package handles:
//   - Command line flags for version, preferences and glyph selection
//   - Interactive terminal detection
//   - Content validation before the first draw
//   - TUI initialization and execution
package main

import (
	"fmt"
	"log"
	"os"

	"folio/internal"
	"folio/internal/content"
	"folio/internal/symbols"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	// A .env next to the binary can carry FOLIO_ASCII and FOLIO_DEBUG.
	// Glyph detection ran at package init, so run it again with the
	// loaded variables in place.
	godotenv.Load()
	symbols.Detect()

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Println(internal.GetFullVersionString())
			return
		case "--settings":
			printSettings()
			return
		case "--reset":
			resetSettings()
			return
		case "--ascii":
			symbols.ForceASCII()
		case "--help", "-h":
			printUsage()
			return
		default:
			fmt.Println(symbols.FormatError("unknown flag: " + arg))
			fmt.Println()
			printUsage()
			os.Exit(1)
		}
	}

	// The page is all escape codes and alt screen. Refuse pipes.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Println(symbols.FormatError("folio needs an interactive terminal, not a pipe"))
		os.Exit(1)
	}

	if err := content.Site.Validate(); err != nil {
		fmt.Println(symbols.FormatError(fmt.Sprintf("page content: %v", err)))
		os.Exit(1)
	}

	p := tea.NewProgram(internal.InitialModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// printSettings shows the saved display preferences.
func printSettings() {
	summary, err := internal.GetSettingsSummary()
	if err != nil {
		fmt.Println(symbols.FormatError(fmt.Sprintf("failed to read settings: %v", err)))
		os.Exit(1)
	}
	fmt.Println(summary)
}

// resetSettings restores the default display preferences.
func resetSettings() {
	if err := internal.ResetSettings(); err != nil {
		fmt.Println(symbols.FormatError(fmt.Sprintf("failed to reset settings: %v", err)))
		os.Exit(1)
	}
	fmt.Println(symbols.Current.Success + " display preferences reset to defaults")
}

// printUsage shows flags, environment variables and the key bindings.
func printUsage() {
	fmt.Println(internal.GetAppTitle())
	fmt.Println()
	fmt.Println("Usage: folio [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version, -v   print the version and exit")
	fmt.Println("  --settings      show the saved display preferences")
	fmt.Println("  --reset         restore default display preferences")
	fmt.Println("  --ascii         force ASCII glyphs for this run")
	fmt.Println("  --help, -h      show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  FOLIO_ASCII=1   same as --ascii")
	fmt.Println("  FOLIO_DEBUG=1   append runtime events to ~/.cache/folio/folio.log")
	fmt.Println()
	fmt.Println("Keys: j/k scroll, [ and ] hop sections, 1-0 jump, m menu, r reduced motion, a ascii glyphs, q quit")
}
