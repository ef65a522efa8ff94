package employee

import (
	"context"
	"time"

	"github.com/hrkit/employee-service/internal/domain"
)

/*
EmployeeRepo
------------
Persistence port for account records. Only describes WHAT the service
needs, not HOW it's stored.
*/
type EmployeeRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.Employee, error)
	GetByID(ctx context.Context, id int64) (domain.Employee, error)
	Create(ctx context.Context, email, passwordHash string, role domain.Role) (domain.Employee, error)

	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdatePasswordHash(ctx context.Context, id int64, newHash string) error

	// Delete removes the account; the profile row goes with it (FK cascade).
	Delete(ctx context.Context, id int64) error

	// ListWithProfiles returns every account joined with its profile fields.
	// Profile fields are nil when the employee has not filled a profile yet.
	ListWithProfiles(ctx context.Context) ([]DirectoryEntry, error)
}

/*
ProfileRepo
-----------
Persistence port for profile records, keyed by the owning employee id.
*/
type ProfileRepo interface {
	GetByEmployee(ctx context.Context, employeeID int64) (domain.Profile, error)

	// Upsert inserts the profile on first add and overwrites it after.
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)

	// Update applies only the non-nil fields.
	Update(ctx context.Context, employeeID int64, name, phone *string, age *int) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies session tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	EmployeeID int64
	Email      string
	Role       domain.Role
	Exp        time.Time
}

type TokenSigner interface {
	Sign(id int64, email string, role domain.Role, ttl time.Duration) (string, error)
	Verify(token string) (TokenClaims, error)
}

// DirectoryEntry is one row of the admin directory listing: account fields
// joined with the (possibly absent) profile.
type DirectoryEntry struct {
	ID    int64
	Email string
	Role  domain.Role
	Name  *string
	Phone *string
	Age   *int
}
