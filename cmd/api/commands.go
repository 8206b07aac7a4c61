package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/repositories"
	"github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/bootstrap"
	"github.com/wmad/library-backend/internal/db"
	"github.com/wmad/library-backend/internal/seed"
	"github.com/wmad/library-backend/internal/server"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "library-api",
		Short:         "Library management REST backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", bootstrap.DefaultConfigPath, "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), configPath, func(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
					return bootstrap.RunMigrations(ctx, database, lgr)
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create the default roles and book issue statuses",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), configPath, func(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
					return seed.CreateDefaultData(ctx, database, lgr)
				})
			},
		},
		newCreateAccountCommand(&configPath),
	)

	return root
}

func newCreateAccountCommand(configPath *string) *cobra.Command {
	var req dto.CreateUserAccountRequest
	var email, username, role string

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create a staff account, prompting for the password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			req.Email, req.Username, req.Password = &email, &username, &password

			return withDatabase(cmd.Context(), *configPath, func(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
				repos := repositories.NewRepositories(database.Pool)

				userRole, err := repos.LookupRepository.GetRoleByName(ctx, role)
				if err != nil {
					return fmt.Errorf("unknown role %q: %w", role, err)
				}
				req.UserRoleID = userRole.ID

				account, err := services.NewUserAccountService(repos.UserAccountRepository).CreateUserAccount(ctx, &req)
				if err != nil {
					return err
				}
				lgr.Info().Int64("userID", account.ID).Str("role", role).Msg("Staff account created")
				fmt.Fprintf(cmd.OutOrStdout(), "Created account %d (%s, %s)\n", account.ID, account.Username, role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&role, "role", "admin", "role name (admin or librarian)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")

	activated := true
	req.IsActivated = &activated

	return cmd
}

func serve(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	srv, err := server.NewServer(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	return srv.Run()
}

func withDatabase(ctx context.Context, configPath string, fn func(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(ctx, database, lgr)
}

// readPassword reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
