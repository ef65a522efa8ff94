package employee

import (
	"context"

	"github.com/hrkit/employee-service/internal/domain"
)

type ProfileInput struct {
	Name  string
	Phone string
	Age   int
}

// AddProfile fills the caller's own profile. The row is created on first add
// and overwritten after; there is never more than one profile per account.
// Admins do not add data on behalf of others through this operation.
func (s *Service) AddProfile(ctx context.Context, actor domain.Identity, in ProfileInput) (domain.Profile, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.Age <= 0 {
		missing = append(missing, "age")
	}
	if len(missing) > 0 {
		return domain.Profile{}, domain.ErrMissingFields(missing...)
	}

	p := domain.Profile{
		Name:       in.Name,
		Phone:      in.Phone,
		Age:        in.Age,
		EmployeeID: actor.ID,
	}
	return s.profiles.Upsert(ctx, p)
}

// EmployeeProfile is a single profile joined with the owning account's email.
type EmployeeProfile struct {
	ID    int64
	Email string
	Role  domain.Role
	Name  string
	Phone string
	Age   int
}

// GetProfile returns one employee's profile. Owner or admin only.
func (s *Service) GetProfile(ctx context.Context, actor domain.Identity, id int64) (EmployeeProfile, error) {
	if !domain.CanReadProfile(actor, id) {
		return EmployeeProfile{}, domain.ErrNotAuthorized()
	}

	p, err := s.profiles.GetByEmployee(ctx, id)
	if err != nil {
		return EmployeeProfile{}, err
	}
	u, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return EmployeeProfile{}, err
	}

	return EmployeeProfile{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Name:  p.Name,
		Phone: p.Phone,
		Age:   p.Age,
	}, nil
}

// ListProfiles returns the whole directory. Admin only.
func (s *Service) ListProfiles(ctx context.Context, actor domain.Identity) ([]DirectoryEntry, error) {
	if !domain.CanListProfiles(actor) {
		return nil, domain.ErrNotAuthorized()
	}
	return s.employees.ListWithProfiles(ctx)
}
