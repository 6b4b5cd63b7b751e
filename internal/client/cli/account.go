package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/listsync/internal/config"
	"github.com/iudanet/listsync/internal/validation"
)

func newRegisterCommand(opts *RootOptions) *cobra.Command {
	var (
		username     string
		passwordFile string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the sync server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireServer(); err != nil {
				return err
			}
			ctx := cmd.Context()
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}

			if username == "" {
				if username, err = opts.io.ReadInput("Username: "); err != nil {
					return fmt.Errorf("failed to read username: %w", err)
				}
			}
			if err := validation.ValidateUsername(username); err != nil {
				return fmt.Errorf("invalid username: %w", err)
			}

			password, err := readPassword(opts.io, passwordFile, "Password: ")
			if err != nil {
				return err
			}
			if passwordFile == "" && !envPassword() {
				confirm, err := opts.io.ReadPassword("Confirm password: ")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				if confirm != password {
					return fmt.Errorf("passwords do not match")
				}
			}

			res, err := app.Auth.Register(ctx, username, password)
			if err != nil {
				return err
			}
			opts.io.Printf("Registered %s (user id %s)\n", res.Username, res.UserID)
			opts.io.Println("Run 'listsync login' to start syncing.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from file")
	return cmd
}

func newLoginCommand(opts *RootOptions) *cobra.Command {
	var (
		username     string
		passwordFile string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the sync server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireServer(); err != nil {
				return err
			}
			ctx := cmd.Context()
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}

			if username == "" {
				if username, err = opts.io.ReadInput("Username: "); err != nil {
					return fmt.Errorf("failed to read username: %w", err)
				}
			}
			password, err := readPassword(opts.io, passwordFile, "Password: ")
			if err != nil {
				return err
			}

			res, err := app.Auth.Login(ctx, username, password)
			if err != nil {
				return err
			}
			opts.io.Printf("Logged in as %s\n", res.Username)

			// первая синхронизация сразу после входа
			if !opts.Offline {
				opts.autoSync(ctx, app)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read password from file")
	return cmd
}

func newLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}
			if err := app.Auth.Logout(ctx); err != nil {
				return err
			}
			opts.io.Println("Logged out. Local list is kept.")
			return nil
		},
	}
}

func newConfigureCommand(opts *RootOptions) *cobra.Command {
	var (
		testMode bool
		local    bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Save settings to the config file",
		Long: `Save the sync server (--server) and test mode to the config file.
--local removes the server so the list stays on this device.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(opts.ConfigPath)
			if err != nil {
				return err
			}

			if opts.ServerURL != "" {
				if err := validation.ValidateServerURL(opts.ServerURL); err != nil {
					return err
				}
				cfg.ServerURL = opts.ServerURL
			}
			if local {
				cfg.ServerURL = ""
			}
			if cmd.Flags().Changed("test-mode") {
				cfg.TestMode = testMode
			}
			if opts.DBPath != "" {
				cfg.DBPath = opts.DBPath
			}

			if err := config.SaveClient(opts.ConfigPath, cfg); err != nil {
				return err
			}
			opts.io.Printf("Saved %s\n", opts.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&testMode, "test-mode", false, "disable sync without removing the server")
	cmd.Flags().BoolVar(&local, "local", false, "remove the sync server")
	return cmd
}
