// Package seed creates the lookup rows the application expects to exist.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/wmad/library-backend/internal/app/models"
	appRepos "github.com/wmad/library-backend/internal/app/repositories"
	"github.com/wmad/library-backend/internal/db"
)

// DefaultRoles are the staff roles created on every start
var DefaultRoles = []string{appModels.RoleAdmin, appModels.RoleLibrarian}

// DefaultStatuses are the book issue statuses created on every start
var DefaultStatuses = []string{appModels.StatusCheckedOut, appModels.StatusReturned, appModels.StatusOverdue}

// TxRunner runs a function inside a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CreateDefaultData upserts the default roles and statuses in one
// transaction. Running it repeatedly is harmless.
func CreateDefaultData(ctx context.Context, runner TxRunner, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (roles/statuses)...")

	err := runner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		lookups := appRepos.NewLookupRepository(tx)

		for _, role := range DefaultRoles {
			id, err := lookups.EnsureRole(ctx, role)
			if err != nil {
				return fmt.Errorf("failed to seed role %q: %w", role, err)
			}
			lgr.Debug().Str("role", role).Int64("id", id).Msg("Role ready")
		}

		for _, status := range DefaultStatuses {
			id, err := lookups.EnsureStatus(ctx, status)
			if err != nil {
				return fmt.Errorf("failed to seed status %q: %w", status, err)
			}
			lgr.Debug().Str("status", status).Int64("id", id).Msg("Book issue status ready")
		}
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Int("roles", len(DefaultRoles)).Int("statuses", len(DefaultStatuses)).Msg("Default data ready")
	return nil
}
