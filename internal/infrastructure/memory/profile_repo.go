package memory

import (
	"context"
	"sync"

	"github.com/hrkit/employee-service/internal/domain"
)

// ProfileRepo keeps profile records keyed by owning employee, matching the
// UNIQUE(employee_id) constraint of the Postgres schema.
type ProfileRepo struct {
	mu sync.RWMutex

	byEmployee map[int64]domain.Profile
	nextID     int64
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{
		byEmployee: make(map[int64]domain.Profile),
		nextID:     1,
	}
}

func (r *ProfileRepo) GetByEmployee(ctx context.Context, employeeID int64) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byEmployee[employeeID]
	if !ok {
		return domain.Profile{}, domain.ErrEmployeeNotFound()
	}
	return p, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byEmployee[p.EmployeeID]
	if !ok {
		cur = domain.Profile{ID: r.nextID, EmployeeID: p.EmployeeID}
		r.nextID++
	}
	cur.Name, cur.Phone, cur.Age = p.Name, p.Phone, p.Age
	r.byEmployee[p.EmployeeID] = cur
	return cur, nil
}

func (r *ProfileRepo) Update(ctx context.Context, employeeID int64, name, phone *string, age *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byEmployee[employeeID]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}
	if name != nil {
		p.Name = *name
	}
	if phone != nil {
		p.Phone = *phone
	}
	if age != nil {
		p.Age = *age
	}
	r.byEmployee[employeeID] = p
	return nil
}

func (r *ProfileRepo) dropByEmployee(employeeID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byEmployee, employeeID)
}
