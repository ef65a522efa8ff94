package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/domain"
)

type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanEmployee(row *sql.Row) (domain.Employee, error) {
	var u domain.Employee
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		return domain.Employee{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}

// ---------- employee.EmployeeRepo ----------

func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	email = normalizeEmail(email)

	const q = `
SELECT id, email, password_hash, role, created_at
FROM employees
WHERE email = $1
LIMIT 1;
`
	u, err := scanEmployee(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrEmployeeNotFound()
		}
		return domain.Employee{}, domain.ErrDBUnavailable(err)
	}
	return u, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (domain.Employee, error) {
	const q = `
SELECT id, email, password_hash, role, created_at
FROM employees
WHERE id = $1
LIMIT 1;
`
	u, err := scanEmployee(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrEmployeeNotFound()
		}
		return domain.Employee{}, domain.ErrDBUnavailable(err)
	}
	return u, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, email, passwordHash string, role domain.Role) (domain.Employee, error) {
	email = normalizeEmail(email)

	const q = `
INSERT INTO employees (email, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id, email, password_hash, role, created_at;
`
	u, err := scanEmployee(r.db.QueryRowContext(ctx, q, email, passwordHash, string(role)))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Employee{}, domain.ErrEmailTaken()
		}
		return domain.Employee{}, domain.ErrDBUnavailable(err)
	}
	return u, nil
}

func (r *EmployeeRepo) UpdateEmail(ctx context.Context, id int64, email string) error {
	email = normalizeEmail(email)

	const q = `
UPDATE employees
SET email = $2
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, id, email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken()
		}
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrEmployeeNotFound()
	}
	return nil
}

func (r *EmployeeRepo) UpdatePasswordHash(ctx context.Context, id int64, newHash string) error {
	const q = `
UPDATE employees
SET password_hash = $2
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, id, newHash)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrEmployeeNotFound()
	}
	return nil
}

// Delete removes the account row; employee_profiles.employee_id carries
// ON DELETE CASCADE, so the profile goes in the same statement.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM employees WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrEmployeeNotFound()
	}
	return nil
}

func (r *EmployeeRepo) ListWithProfiles(ctx context.Context) ([]employee.DirectoryEntry, error) {
	const q = `
SELECT e.id, e.email, e.role, p.name, p.phone, p.age
FROM employees e
LEFT JOIN employee_profiles p ON p.employee_id = e.id
ORDER BY e.id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []employee.DirectoryEntry
	for rows.Next() {
		var (
			e     employee.DirectoryEntry
			role  string
			name  sql.NullString
			phone sql.NullString
			age   sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Email, &role, &name, &phone, &age); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		e.Role = domain.Role(role)
		if name.Valid {
			e.Name = &name.String
		}
		if phone.Valid {
			e.Phone = &phone.String
		}
		if age.Valid {
			n := int(age.Int64)
			e.Age = &n
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
