package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/domain"
)

// EmployeeRepo is a map-backed implementation of employee.EmployeeRepo with
// the same observable behavior as the Postgres repo: normalized emails,
// conflict on duplicates, not-found on zero matching rows, cascade delete of
// the profile row.
type EmployeeRepo struct {
	mu sync.RWMutex

	byID    map[int64]domain.Employee
	byEmail map[string]int64
	nextID  int64

	profiles *ProfileRepo // for cascade delete, may be nil
}

func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{
		byID:    make(map[int64]domain.Employee),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

// WithProfiles wires the profile repo used for cascade deletes, mirroring
// the FK in the Postgres schema.
func (r *EmployeeRepo) WithProfiles(p *ProfileRepo) *EmployeeRepo {
	r.profiles = p
	return r
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound()
	}
	return r.byID[id], nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound()
	}
	return u, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, email, passwordHash string, role domain.Role) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = normalizeEmail(email)
	if _, exists := r.byEmail[email]; exists {
		return domain.Employee{}, domain.ErrEmailTaken()
	}

	u := domain.Employee{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *EmployeeRepo) UpdateEmail(ctx context.Context, id int64, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}

	email = normalizeEmail(email)
	if other, taken := r.byEmail[email]; taken && other != id {
		return domain.ErrEmailTaken()
	}

	delete(r.byEmail, u.Email)
	u.Email = email
	r.byID[id] = u
	r.byEmail[email] = id
	return nil
}

func (r *EmployeeRepo) UpdatePasswordHash(ctx context.Context, id int64, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}
	u.PasswordHash = newHash
	r.byID[id] = u
	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)

	if r.profiles != nil {
		r.profiles.dropByEmployee(id)
	}
	return nil
}

func (r *EmployeeRepo) ListWithProfiles(ctx context.Context) ([]employee.DirectoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.DirectoryEntry, 0, len(r.byID))
	for _, u := range r.byID {
		e := employee.DirectoryEntry{ID: u.ID, Email: u.Email, Role: u.Role}
		if r.profiles != nil {
			if p, err := r.profiles.GetByEmployee(ctx, u.ID); err == nil {
				name, phone, age := p.Name, p.Phone, p.Age
				e.Name, e.Phone, e.Age = &name, &phone, &age
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
