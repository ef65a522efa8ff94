package employee

import (
	"context"

	"github.com/hrkit/employee-service/internal/domain"
)

type UpdateInput struct {
	Name  *string
	Phone *string
	Age   *int

	Email    *string
	Password *string
}

func (in UpdateInput) hasProfileFields() bool {
	return in.Name != nil || in.Phone != nil || in.Age != nil
}

func (in UpdateInput) hasAccountFields() bool {
	return in.Email != nil || in.Password != nil
}

// normalized drops blank strings and non-positive ages so they never reach
// storage. A blank email or password would otherwise overwrite real data.
func (in UpdateInput) normalized() UpdateInput {
	out := in
	if out.Name != nil && *out.Name == "" {
		out.Name = nil
	}
	if out.Phone != nil && *out.Phone == "" {
		out.Phone = nil
	}
	if out.Age != nil && *out.Age <= 0 {
		out.Age = nil
	}
	if out.Email != nil && *out.Email == "" {
		out.Email = nil
	}
	if out.Password != nil && *out.Password == "" {
		out.Password = nil
	}
	return out
}

// UpdateEmployee applies the supplied subset of fields. Name/phone/age go to
// the profile row, email/password to the account row; the password is
// re-hashed before storage. The two writes are independent statements, not a
// transaction: a failure after the profile write leaves it in place and
// surfaces the account-write error.
func (s *Service) UpdateEmployee(ctx context.Context, actor domain.Identity, id int64, in UpdateInput) ([]string, error) {
	if !domain.CanUpdateEmployee(actor, id) {
		return nil, domain.ErrNotOwner()
	}

	in = in.normalized()
	if !in.hasProfileFields() && !in.hasAccountFields() {
		return nil, domain.ErrNoUpdateData()
	}

	var updated []string

	if in.hasProfileFields() {
		// Profile fields require an existing profile row; filling an empty
		// profile goes through AddProfile instead.
		if _, err := s.profiles.GetByEmployee(ctx, id); err != nil {
			return nil, err
		}
		if err := s.profiles.Update(ctx, id, in.Name, in.Phone, in.Age); err != nil {
			return nil, err
		}
		if in.Name != nil {
			updated = append(updated, "name")
		}
		if in.Phone != nil {
			updated = append(updated, "phone")
		}
		if in.Age != nil {
			updated = append(updated, "age")
		}
	}

	if in.Email != nil {
		if err := s.employees.UpdateEmail(ctx, id, *in.Email); err != nil {
			return updated, err
		}
		updated = append(updated, "email")
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return updated, domain.ErrHashFailed(err)
		}
		if err := s.employees.UpdatePasswordHash(ctx, id, hash); err != nil {
			return updated, err
		}
		updated = append(updated, "password")
	}

	return updated, nil
}
