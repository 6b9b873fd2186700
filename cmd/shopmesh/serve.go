package main

import (
	"github.com/spf13/cobra"
)

var orchestratorCmd = &cobra.Command{
	Use:   "orchestrator",
	Short: "Start the orchestrator with its chat gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newAssistant()
		if err != nil {
			return err
		}
		return serve(a.OrchestratorServer())
	},
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Start the product specialist agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newAssistant()
		if err != nil {
			return err
		}
		return serve(a.ProductServer())
	},
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Start the order specialist agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newAssistant()
		if err != nil {
			return err
		}
		return serve(a.OrderServer())
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Start the web research specialist agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newAssistant()
		if err != nil {
			return err
		}
		return serve(a.SearchServer())
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Start the shared tool backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := newAssistant()
		if err != nil {
			return err
		}
		return serve(a.ToolServer())
	},
}
