package main

import (
	"flag"
	"fmt"
	"os"

	"studeploy/pkg/activity"
	"studeploy/pkg/api"
	"studeploy/pkg/cmd"
	"studeploy/pkg/config"
	"studeploy/pkg/logging"
	"studeploy/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultServer = "http://127.0.0.1:8000"

func main() {
	logging.LogDebug("Logger test: main started")

	// Handle subcommands before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "deploy":
			cmd.HandleDeployCommand(resolveDefaultServer())
			return
		case "export":
			cmd.HandleExportCommand()
			return
		case "import":
			cmd.HandleImportCommand()
			return
		case "help", "-h", "--help":
			cmd.ShowMainHelpAndExit()
		}
	}

	server := flag.String("server", "", "Base address of the deployer backend")
	flag.Parse()

	// Local store for presets and settings; the TUI still works without it.
	store, err := config.NewStore()
	if err != nil {
		logging.LogError("Local store unavailable: %v", err)
		fmt.Printf("Warning: local store unavailable (%v), presets disabled\n", err)
	}

	baseURL := resolveServerWithStore(*server, store)

	// The activity log and session live exactly as long as the process.
	log := activity.NewLog()
	client := api.NewClient(baseURL, log)

	model := ui.NewModel(client, storeOrEmpty(store))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		store.Close()
	}
}

// resolveDefaultServer opens the store just long enough to honor the
// persisted server setting for headless subcommands; the environment and
// built-in default still apply when the store is unavailable.
func resolveDefaultServer() string {
	store, err := config.NewStore()
	if err != nil {
		logging.LogError("Local store unavailable: %v", err)
		return resolveServerWithStore("", nil)
	}
	defer store.Close()
	return resolveServerWithStore("", store)
}

// resolveServerWithStore additionally consults the persisted setting, and
// remembers an explicitly flagged address for next time.
func resolveServerWithStore(flagValue string, store config.StoreInterface) string {
	if flagValue != "" {
		if store != nil {
			if err := store.SaveSettings(config.Settings{ServerURL: flagValue}); err != nil {
				logging.LogError("Could not persist server setting: %v", err)
			}
		}
		return flagValue
	}
	if env := os.Getenv("STUDEPLOY_SERVER"); env != "" {
		return env
	}
	if store != nil {
		if s := store.Settings(); s.ServerURL != "" {
			return s.ServerURL
		}
	}
	return defaultServer
}

// storeOrEmpty substitutes an in-memory no-op store when SQLite could not
// be opened, so the UI never has to nil-check.
func storeOrEmpty(store config.StoreInterface) config.StoreInterface {
	if store != nil {
		return store
	}
	return config.NewMemoryStore()
}
