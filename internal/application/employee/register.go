package employee

import (
	"context"
	"strings"

	"github.com/hrkit/employee-service/internal/domain"
)

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

// Register creates a new account. Only admins may register; the role must be
// one of the closed set. Duplicate emails surface as a conflict from the
// repository.
func (s *Service) Register(ctx context.Context, actor domain.Identity, in RegisterInput) (domain.Employee, error) {
	if !domain.CanManageAccounts(actor) {
		return domain.Employee{}, domain.ErrNotAuthorized()
	}

	in.Email = strings.TrimSpace(in.Email)

	var missing []string
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if in.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return domain.Employee{}, domain.ErrMissingFields(missing...)
	}

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return domain.Employee{}, domain.ErrInvalidRole()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.Employee{}, domain.ErrHashFailed(err)
	}

	created, err := s.employees.Create(ctx, in.Email, hash, role)
	if err != nil {
		return domain.Employee{}, err
	}
	return created, nil
}
