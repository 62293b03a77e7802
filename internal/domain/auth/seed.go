package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// SeedUsers is the fixed credential set inserted into an empty store.
func SeedUsers() []User {
	return []User{
		{Email: "citizen@manuals", Password: "1234", Role: RoleCitizen},
		{Email: "hospital@manuals", Password: "9999", Role: RoleHospital},
	}
}

// Seed populates the credential store once. A non-empty store is left
// untouched, so repeated startups never duplicate records.
func Seed(ctx context.Context, repo Repository, logger *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := repo.CreateAll(ctx, SeedUsers()); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	logger.Info("users seeded")
	return nil
}
