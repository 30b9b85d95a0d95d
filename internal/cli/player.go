package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AriellAlcantara/Gamebackend/internal/client"
)

func newRegisterCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Handle == "" || cfg.Password == "" {
				return fmt.Errorf("--handle and --pass are required")
			}

			record, err := apiClient.Register(cmd.Context(), cfg.Handle, cfg.Password, email)
			if err != nil {
				return err
			}

			if err := mirror.Reconcile(cfg.ServerURL, record, time.Now()); err != nil {
				return fmt.Errorf("failed to write local mirror: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(record)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email (optional)")

	return cmd
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify your credential and refresh the local mirror",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireIdentity(); err != nil {
				return err
			}

			record, err := apiClient.Login(cmd.Context(), cfg.Handle, cfg.Password)
			if err != nil {
				return err
			}

			if err := mirror.Reconcile(cfg.ServerURL, record, time.Now()); err != nil {
				return fmt.Errorf("failed to write local mirror: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(record)
			return nil
		},
	}
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your current record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireIdentity(); err != nil {
				return err
			}

			record, err := apiClient.Fetch(cmd.Context(), cfg.Handle, cfg.Password)
			if err != nil {
				return err
			}

			if err := mirror.Reconcile(cfg.ServerURL, record, time.Now()); err != nil {
				return fmt.Errorf("failed to write local mirror: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(record)
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	var (
		email       string
		level       int
		experience  int
		score       int
		newPassword string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireIdentity(); err != nil {
				return err
			}

			update := client.Update{}
			if cmd.Flags().Changed("email") {
				update.Email = &email
			}
			if cmd.Flags().Changed("level") {
				update.Level = &level
			}
			if cmd.Flags().Changed("xp") {
				update.Experience = &experience
			}
			if cmd.Flags().Changed("score") {
				update.Score = &score
			}
			if cmd.Flags().Changed("new-pass") {
				update.NewPassword = &newPassword
			}

			record, err := apiClient.UpdateRecord(cmd.Context(), cfg.Handle, cfg.Password, update)
			if err != nil {
				return err
			}

			if err := mirror.Reconcile(cfg.ServerURL, record, time.Now()); err != nil {
				return fmt.Errorf("failed to write local mirror: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(record)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New contact email")
	cmd.Flags().IntVar(&level, "level", 0, "New level")
	cmd.Flags().IntVar(&experience, "xp", 0, "New experience total")
	cmd.Flags().IntVar(&score, "score", 0, "New score")
	cmd.Flags().StringVar(&newPassword, "new-pass", "", "New password")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account permanently",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireIdentity(); err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("deletion is permanent; re-run with --yes to confirm")
			}

			if err := apiClient.Delete(cmd.Context(), cfg.Handle, cfg.Password); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("account %q deleted", cfg.Handle))
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm deletion")

	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top players",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := apiClient.Leaderboard(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of entries (server default when 0)")

	return cmd
}
