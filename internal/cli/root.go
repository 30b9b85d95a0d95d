// Package cli implements the gamecli command line client: account
// management, leaderboard viewing and playing the dice duel.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AriellAlcantara/Gamebackend/internal/client"
)

var (
	cfg       *Config
	apiClient *client.Client
	mirror    *client.Mirror
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gamecli",
		Short: "CLI client for the player account service",
		Long: `gamecli talks to the player account JSON API.

It manages your account, shows the leaderboard, and plays the dice
duel, reporting the outcome to the service. Your stats are mirrored
locally; your password is never stored.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			m, err := client.NewMirror(cfg.MirrorPath)
			if err != nil {
				return err
			}
			mirror = m

			apiClient = client.New(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GAMECLI_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Handle, "handle", cfg.Handle, "Player handle (env: GAMECLI_HANDLE, defaults to the mirrored handle)")
	rootCmd.PersistentFlags().StringVar(&cfg.Password, "pass", cfg.Password, "Password (env: GAMECLI_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&cfg.MirrorPath, "mirror", cfg.MirrorPath, "Local mirror file path (env: GAMECLI_MIRROR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newMeCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// requireIdentity ensures both handle and password are available
func requireIdentity() error {
	if err := cfg.ResolveHandle(mirror); err != nil {
		return fmt.Errorf("--handle is required (no local mirror to read it from)")
	}
	if cfg.Password == "" {
		return fmt.Errorf("--pass is required")
	}
	return nil
}
