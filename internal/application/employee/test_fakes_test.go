package employee

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hrkit/employee-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeEmployeeRepo struct {
	mu sync.Mutex

	byID    map[int64]domain.Employee
	byEmail map[string]int64
	nextID  int64

	// injected errors (if set, method returns error)
	getByEmailErr error
	getByIDErr    error
	createErr     error
	updateMailErr error
	updatePwdErr  error
	deleteErr     error
	listErr       error

	// record calls
	deletedIDs  []int64
	updatedPwd  []struct {
		id   int64
		hash string
	}
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byID:    map[int64]domain.Employee{},
		byEmail: map[string]int64{},
		nextID:  1,
	}
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.Employee{}, f.getByEmailErr
	}
	id, ok := f.byEmail[email]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.Employee{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound()
	}
	return u, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, email, hash string, role domain.Role) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.Employee{}, f.createErr
	}
	if _, exists := f.byEmail[email]; exists {
		return domain.Employee{}, domain.ErrEmailTaken()
	}
	u := domain.Employee{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u.ID
	return u, nil
}

func (f *fakeEmployeeRepo) UpdateEmail(ctx context.Context, id int64, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateMailErr != nil {
		return f.updateMailErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}
	if other, taken := f.byEmail[email]; taken && other != id {
		return domain.ErrEmailTaken()
	}
	delete(f.byEmail, u.Email)
	u.Email = email
	f.byID[id] = u
	f.byEmail[email] = id
	return nil
}

func (f *fakeEmployeeRepo) UpdatePasswordHash(ctx context.Context, id int64, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updatePwdErr != nil {
		return f.updatePwdErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}
	u.PasswordHash = newHash
	f.byID[id] = u
	f.updatedPwd = append(f.updatedPwd, struct {
		id   int64
		hash string
	}{id, newHash})
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound()
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeEmployeeRepo) ListWithProfiles(ctx context.Context) ([]DirectoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]DirectoryEntry, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, DirectoryEntry{ID: u.ID, Email: u.Email, Role: u.Role})
	}
	return out, nil
}

type fakeProfileRepo struct {
	mu sync.Mutex

	byEmployee map[int64]domain.Profile
	nextID     int64

	getErr    error
	upsertErr error
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byEmployee: map[int64]domain.Profile{}, nextID: 1}
}

func (f *fakeProfileRepo) GetByEmployee(ctx context.Context, employeeID int64) (domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Profile{}, f.getErr
	}
	p, ok := f.byEmployee[employeeID]
	if !ok {
		return domain.Profile{}, domain.ErrEmployeeNotFound()
	}
	return p, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil {
		return domain.Profile{}, f.upsertErr
	}
	if prev, ok := f.byEmployee[p.EmployeeID]; ok {
		p.ID = prev.ID
	} else {
		p.ID = f.nextID
		f.nextID++
	}
	f.byEmployee[p.EmployeeID] = p
	return p, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, employeeID int64, name, phone *string, age *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	p, ok := f.byEmployee[employeeID]
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
	f.byEmployee[employeeID] = p
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashFn != nil {
		return h.hashFn(password)
	}
	return "hash:" + password, nil
}

func (h *fakeHasher) Compare(hash string, password string) error {
	if h.compareFn != nil {
		return h.compareFn(hash, password)
	}
	if hash == "hash:"+password {
		return nil
	}
	return errors.New("mismatch")
}

type fakeSigner struct {
	signFn func(id int64, email string, role domain.Role, ttl time.Duration) (string, error)
}

func (s *fakeSigner) Sign(id int64, email string, role domain.Role, ttl time.Duration) (string, error) {
	if s.signFn != nil {
		return s.signFn(id, email, role, ttl)
	}
	return fmt.Sprintf("jwt(%d,%s,%s)", id, email, role), nil
}

func (s *fakeSigner) Verify(token string) (TokenClaims, error) {
	return TokenClaims{}, nil
}

/*
Service factory for tests
*/

func newSvcForTest(t *testing.T) (*Service, *fakeEmployeeRepo, *fakeProfileRepo, *fakeHasher, *fakeSigner) {
	t.Helper()

	employees := newFakeEmployeeRepo()
	profiles := newFakeProfileRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}

	svc := NewService(employees, profiles, hasher, signer, Config{TokenTTL: time.Hour})
	if svc == nil {
		t.Fatalf("svc is nil")
	}
	return svc, employees, profiles, hasher, signer
}

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo, email, password string, role domain.Role) domain.Employee {
	t.Helper()

	u, err := repo.Create(context.Background(), email, "hash:"+password, role)
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return u
}

/*
Small assertions
*/

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}

var (
	admin  = domain.Identity{ID: 100, Email: "admin@corp.test", Role: domain.RoleAdmin}
	staff  = domain.Identity{ID: 200, Email: "staff@corp.test", Role: domain.RoleStaff}
	intern = domain.Identity{ID: 300, Email: "intern@corp.test", Role: domain.RoleIntern}
)
