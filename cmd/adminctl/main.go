// adminctl is the command-line admin panel: it drives the auth and
// property endpoints through the API client and keeps its session on
// disk between invocations.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nadeemahmad9/real-estate/client"
)

var (
	apiURL     string
	sessionDir string
)

func newClient() *client.Client {
	return client.New(apiURL, client.NewFileStore(sessionDir))
}

func main() {
	_ = godotenv.Load()

	defaultDir := ".adminctl"
	if home, err := os.UserHomeDir(); err == nil {
		defaultDir = filepath.Join(home, ".adminctl")
	}

	defaultURL := os.Getenv("API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Admin CLI for the property listing API",
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "Base URL of the listing API")
	rootCmd.PersistentFlags().StringVar(&sessionDir, "session-dir", defaultDir, "Directory holding the persisted admin session")

	rootCmd.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		listCmd(),
		getCmd(),
		createCmd(),
		updateCmd(),
		deleteCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
