// Package seed creates the records a fresh install needs to be usable:
// a default admin account. It never fabricates domain data; empty
// listings and reports stay empty until real records are entered.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/auth"
	"github.com/acadbase/acadbase/internal/pkg/logger"
)

const defaultAdminEmail = "admin@institute.edu"

// CreateDefaultData ensures a default admin account exists. The password
// comes from ADMIN_DEFAULT_PASSWORD when set; the generated credentials
// are logged once so operators can log in and change them.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(pool)

	count, err := userRepo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &models.User{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     "System Administrator",
		Role:         models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Warn().Str("email", defaultAdminEmail).Msg("Default admin account created; change its password immediately")
	return nil
}
