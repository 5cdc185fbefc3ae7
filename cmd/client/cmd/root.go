// cmd/client/cmd/root.go
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"userpanel/cmd/client/cmd/types"
	"userpanel/cmd/client/cmd/user"
	"userpanel/internal/app/client"
	"userpanel/internal/app/client/config"
	"userpanel/internal/utils/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "userpanel",
	Short: "userpanel - client for the user management backend",
	Long: `userpanel is a command line client for the user management backend.

It authenticates against the server, keeps the session token locally and
lets you browse, search, create, edit and delete user accounts.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	app, err := client.New(cfg, log, confirmDelete)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".userpanel"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file; defaults and environment take over.
	}

	return config.MustLoad(), nil
}

// confirmDelete is the gate the synchronizer calls before any delete goes
// out. --yes on the delete command skips the prompt.
func confirmDelete(id int) bool {
	if user.SkipConfirm {
		return true
	}

	fmt.Printf("Delete user %d? This cannot be undone. [y/N]: ", id)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend server address")
}
