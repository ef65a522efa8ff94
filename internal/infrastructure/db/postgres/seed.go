package postgres

import (
	"context"
	"log"

	"github.com/hrkit/employee-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, email, passwordHash string, role domain.Role) (domain.Employee, error)
}

// SeedBootstrapAdmin creates the first admin account so registration (which
// is admin-only) has a starting point. Restart safe: a duplicate email is
// ignored.
func SeedBootstrapAdmin(ctx context.Context, repo SeederRepo, hasher SeederHasher, email, password string) {
	if email == "" || password == "" {
		return
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		log.Printf("[seed] hash failed (%s): %v", email, err)
		return
	}

	if _, err := repo.Create(ctx, email, hash, domain.RoleAdmin); err != nil {
		// A duplicate means the admin already exists (restart safe); anything
		// else left the system without an admin and must be visible.
		if !domain.Is(err, "email_taken") {
			log.Printf("[seed] bootstrap admin %s failed: %v", email, err)
		}
		return
	}

	log.Printf("[seed] bootstrap admin %s created", email)
}
