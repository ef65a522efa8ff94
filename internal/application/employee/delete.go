package employee

import (
	"context"

	"github.com/hrkit/employee-service/internal/domain"
)

// DeleteAccount removes an account and, through the FK cascade, its profile.
// Admin only. Deleting a missing id reports not-found regardless of prior
// calls.
func (s *Service) DeleteAccount(ctx context.Context, actor domain.Identity, id int64) error {
	if !domain.CanManageAccounts(actor) {
		return domain.ErrNotAuthorized()
	}
	return s.employees.Delete(ctx, id)
}
