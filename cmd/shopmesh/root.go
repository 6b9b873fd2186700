package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopmesh/shopmesh"
	"github.com/shopmesh/shopmesh/config"
)

const version = "1.0.0"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "shopmesh",
	Short: "shopmesh - a multi-agent e-commerce customer service assistant",
	Long: "Shopmesh runs an orchestrator that routes customer requests to product, " +
		"order and search specialist agents, each served over an agent-to-agent " +
		"JSON-RPC endpoint backed by a shared tool backend.",
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "path to .env file (default: ./.env when present)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(orchestratorCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(chatCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of shopmesh",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shopmesh v%s\n", version)
	},
}

func newAssistant() (*shopmesh.Assistant, *config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return shopmesh.New(cfg), cfg, nil
}

// server abstracts the two service types for the shared serve loop.
type server interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// serve starts srv and blocks until SIGINT/SIGTERM, then shuts down with a
// 10 second grace period.
func serve(srv server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
