package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"studeploy/pkg/activity"
	"studeploy/pkg/api"
)

// HandleDeployCommand handles the deploy subcommand logic: submit the
// request, trigger the deployment, then poll until Running.
func HandleDeployCommand(defaultServer string) {
	// Check for help flag in deploy subcommand
	if len(os.Args) > 2 {
		for _, arg := range os.Args[2:] {
			if arg == "-h" || arg == "--help" {
				showDeployHelp()
				os.Exit(0)
			}
		}
	}

	deployCmd := flag.NewFlagSet("deploy", flag.ExitOnError)
	server := deployCmd.String("server", defaultServer, "Base address of the deployer backend")
	name := deployCmd.String("name", "", "Deployment name (becomes the cluster namespace)")
	cpu := deployCmd.Float64("cpu", 0.5, "CPU in cores (e.g. 0.25, 0.5, 1)")
	memory := deployCmd.Int("memory", 256, "Memory in MB")
	storage := deployCmd.Int("storage", 1, "Storage in GB")
	attempts := deployCmd.Int("attempts", api.DefaultPollAttempts, "Max status poll attempts")
	interval := deployCmd.Duration("interval", api.DefaultPollInterval, "Delay between poll attempts")
	verbose := deployCmd.Bool("v", false, "Verbose output (print the activity trail on exit)")

	deployCmd.Usage = showDeployHelp

	if err := deployCmd.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	req := api.DeploymentRequest{
		Name:    *name,
		CPU:     *cpu,
		Memory:  *memory,
		Storage: *storage,
	}

	log := activity.NewLog()
	client := api.NewClient(*server, log)

	translated := req.Translate()
	fmt.Printf("Deploying %s (cpu=%s, memory=%s, storage=%s) via %s\n",
		req.Name, translated.CPU, translated.Memory, translated.Storage, *server)

	start := time.Now()
	err := client.Deploy(context.Background(), req, api.DeployOptions{
		MaxAttempts: *attempts,
		Interval:    *interval,
	})

	if *verbose {
		printActivityTrail(log)
	}

	if err != nil {
		switch {
		case errors.Is(err, api.ErrPollTimeout):
			fmt.Printf("❌ %s was accepted but did not reach Running within %d attempts.\n", req.Name, *attempts)
		case errors.Is(err, api.ErrInvalidRequest):
			fmt.Printf("❌ Invalid request: %v\n", err)
		default:
			fmt.Printf("❌ Deploy failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ %s is Running (took %s).\n", req.Name, time.Since(start).Round(time.Second))
}

// printActivityTrail dumps the activity log, most recent first.
func printActivityTrail(log *activity.Log) {
	entries := log.Entries()
	if len(entries) == 0 {
		return
	}
	fmt.Println("\nActivity trail:")
	for _, e := range entries {
		fmt.Printf("  %s  %-7s  %s\n", e.Timestamp, e.Outcome, e.Path)
	}
}

// showDeployHelp displays help for the deploy command
func showDeployHelp() {
	programName := os.Args[0]
	fmt.Fprintf(os.Stderr, `%s deploy - Submit and deploy a request from the command line

Runs the full pipeline without the TUI: validate the request, submit it,
trigger deployment from the persisted record, then poll the status
endpoint until the workload is Running or the attempt budget runs out.

Usage:
  %s deploy --name <name> [options]

Options:
  --server string     Base address of the deployer backend
  --name string       Deployment name; must be a DNS-1123 label
  --cpu float         CPU in cores (default 0.5)
  --memory int        Memory in MB (default 256)
  --storage int       Storage in GB (default 1)
  --attempts int      Max status poll attempts (default %d)
  --interval duration Delay between poll attempts (default %s)
  -v                  Print the activity trail before exiting
  -h, --help          Show this help message

Examples:
  %s deploy --name alice                          Deploy with default resources
  %s deploy --name bob --cpu 1 --memory 512       One core, 512 MB
  %s deploy --name carol --attempts 10 -v         Shorter poll budget, verbose

Exit status is 0 only when the deployment was observed Running.
`, programName, programName, api.DefaultPollAttempts, api.DefaultPollInterval, programName, programName, programName)
}
