package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"go-catalog/apis"
	itemsAPI "go-catalog/apis/items"
	"go-catalog/client"
	"go-catalog/env"
	"go-catalog/storage"
	"go-catalog/ui"
)

func main() {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd := &cobra.Command{
		Use:           "go-catalog",
		Short:         "Catalog browsing application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd(), newBrowseCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {

			e, err := env.GetEnv()
			if err != nil {
				return err
			}

			store := storage.NewFileStore(e.Storage.FilePath)
			api := itemsAPI.NewItemsAPI(store)

			g := gin.Default()
			apis.RegisterItemsAPI(api, g.Group("api"))

			addr := fmt.Sprintf(":%d", e.Server.Port)
			slog.Info("serving catalog API", "addr", addr, "data_file", store.Path())

			return g.Run(addr)
		},
	}
}

func newBrowseCmd() *cobra.Command {

	var addr string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {

			c := client.New(addr)

			program := tea.NewProgram(ui.NewBrowseModel(c), tea.WithAltScreen())
			_, err := program.Run()

			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "base URL of the catalog API")

	return cmd
}
