package cmd

import (
	"flag"
	"fmt"
	"os"

	"studeploy/pkg/config"
)

// HandleExportCommand handles the export subcommand: dump saved request
// presets as YAML.
func HandleExportCommand() {
	if len(os.Args) > 2 {
		for _, arg := range os.Args[2:] {
			if arg == "-h" || arg == "--help" {
				showExportHelp()
				os.Exit(0)
			}
		}
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	outputFile := exportCmd.String("o", "", "Output file (defaults to stdout)")

	exportCmd.Usage = showExportHelp

	if err := exportCmd.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	store, err := config.NewStore()
	if err != nil {
		fmt.Printf("Error opening local store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	presets := store.GetAll()
	if len(presets) == 0 {
		fmt.Println("No presets to export.")
		return
	}

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Printf("Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := config.ExportPresets(out, presets); err != nil {
		fmt.Printf("Error exporting presets: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		fmt.Printf("Exported %d preset(s) to %s\n", len(presets), *outputFile)
	}
}

// showExportHelp displays help for the export command
func showExportHelp() {
	programName := os.Args[0]
	fmt.Fprintf(os.Stderr, `%s export - Export saved request presets as YAML

Usage:
  %s export [options]

Options:
  -o string    Output file (defaults to stdout)
  -h, --help   Show this help message

Examples:
  %s export                   Print presets to stdout
  %s export -o presets.yaml   Write presets to a file
`, programName, programName, programName, programName)
}
