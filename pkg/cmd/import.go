package cmd

import (
	"flag"
	"fmt"
	"os"

	"studeploy/pkg/config"

	"github.com/google/uuid"
)

// HandleImportCommand handles the import subcommand: load request presets
// from a YAML document produced by export.
func HandleImportCommand() {
	if len(os.Args) > 2 {
		for _, arg := range os.Args[2:] {
			if arg == "-h" || arg == "--help" {
				showImportHelp()
				os.Exit(0)
			}
		}
	}

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	inputFile := importCmd.String("f", "", "Input file (defaults to stdin)")

	importCmd.Usage = showImportHelp

	if err := importCmd.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	in := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Printf("Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	presets, err := config.ImportPresets(in)
	if err != nil {
		fmt.Printf("Error reading presets: %v\n", err)
		os.Exit(1)
	}
	if len(presets) == 0 {
		fmt.Println("No presets to import.")
		return
	}

	store, err := config.NewStore()
	if err != nil {
		fmt.Printf("Error opening local store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	added := 0
	for _, p := range presets {
		// Exported documents carry IDs from the source machine; a fresh
		// ID avoids colliding with a preset already imported here.
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if _, exists := store.GetPresetByID(p.ID); exists {
			p.ID = uuid.New().String()
		}
		if err := store.AddPreset(p); err != nil {
			fmt.Printf("Skipping preset %q: %v\n", p.Name, err)
			continue
		}
		added++
	}

	fmt.Printf("Imported %d of %d preset(s).\n", added, len(presets))
}

// showImportHelp displays help for the import command
func showImportHelp() {
	programName := os.Args[0]
	fmt.Fprintf(os.Stderr, `%s import - Import request presets from YAML

Usage:
  %s import [options]

Options:
  -f string    Input file (defaults to stdin)
  -h, --help   Show this help message

Examples:
  %s import -f presets.yaml   Import presets from a file
  %s export | %s import       Copy presets between stores
`, programName, programName, programName, programName, programName)
}
