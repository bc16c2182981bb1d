package cmd

import (
	"fmt"
	"os"
)

// HandleHelpCommand displays help information for the application
func HandleHelpCommand() {
	showMainHelp()
}

// showMainHelp displays the main application help
func showMainHelp() {
	programName := os.Args[0]
	fmt.Printf(`studeploy - Student Deployer client

A terminal client for the Student Deployer Control API: submit deployment
requests, watch them converge to Running, and manage records and
port-forward tunnels as an admin.

Usage:
  %s [command]

Available Commands:
  deploy   Submit and deploy a request without the TUI
  export   Export saved request presets as YAML
  import   Import request presets from YAML
  help     Show help information

Options:
  --server string  Base address of the deployer backend
  -h, --help       Show help information

Interactive Mode:
  Run without any command to start the interactive TUI where you can:
  - Fill in and submit a deployment request, then watch it converge
  - Check the current phase of a deployment with 's'
  - Log in with the admin key (Ctrl+A) to list and clean up records
  - Start a port-forward tunnel for a record with 'f', stop all with 'x'
  - Review the activity trail with Ctrl+L

Examples:
  %s                              Start interactive TUI
  %s deploy --name alice --cpu 1  Deploy from the command line
  %s export -o presets.yaml       Export presets
  %s help                         Show this help message

For more information about a specific command, use:
  %s <command> --help
`, programName, programName, programName, programName, programName, programName)
}

// ShowMainHelpAndExit displays help and exits with code 0
func ShowMainHelpAndExit() {
	showMainHelp()
	os.Exit(0)
}
