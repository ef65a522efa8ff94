package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/hrkit/employee-service/internal/domain"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) GetByEmployee(ctx context.Context, employeeID int64) (domain.Profile, error) {
	const q = `
SELECT id, name, phone, age, employee_id
FROM employee_profiles
WHERE employee_id = $1
LIMIT 1;
`
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, q, employeeID).Scan(&p.ID, &p.Name, &p.Phone, &p.Age, &p.EmployeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrEmployeeNotFound()
		}
		return domain.Profile{}, domain.ErrDBUnavailable(err)
	}
	return p, nil
}

// Upsert relies on the UNIQUE constraint on employee_id: one profile row per
// account, created on first add and overwritten after.
func (r *ProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	const q = `
INSERT INTO employee_profiles (name, phone, age, employee_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (employee_id)
DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone, age = EXCLUDED.age
RETURNING id, name, phone, age, employee_id;
`
	var out domain.Profile
	err := r.db.QueryRowContext(ctx, q, p.Name, p.Phone, p.Age, p.EmployeeID).
		Scan(&out.ID, &out.Name, &out.Phone, &out.Age, &out.EmployeeID)
	if err != nil {
		return domain.Profile{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ProfileRepo) Update(ctx context.Context, employeeID int64, name, phone *string, age *int) error {
	set := make([]string, 0, 3)
	args := []any{employeeID}

	appendSet := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	if name != nil {
		appendSet("name", *name)
	}
	if phone != nil {
		appendSet("phone", *phone)
	}
	if age != nil {
		appendSet("age", *age)
	}
	if len(set) == 0 {
		return nil
	}

	q := "UPDATE employee_profiles SET " + strings.Join(set, ", ") + " WHERE employee_id = $1;"

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrEmployeeNotFound()
	}
	return nil
}
