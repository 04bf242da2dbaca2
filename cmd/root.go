package cmd

import (
	"os"

	"github.com/holmes89/qaa/lib/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "qaa",
	Short:        "client for the question and answer service",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if app.baseURL != "" {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		app.baseURL = cfg.Client.URL
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list records",
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "get a record",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create a record",
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "update a record",
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "delete records",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&app.baseURL, "url", "", "service base url (defaults to client.url)")

	rootCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
}
