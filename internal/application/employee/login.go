package employee

import (
	"context"
	"strings"

	"github.com/hrkit/employee-service/internal/domain"
)

type LoginResult struct {
	Employee domain.Employee
	Token    string
}

// Login authenticates an employee and issues a session token.
// Unknown email and wrong password produce the same error so the endpoint
// cannot be used to enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return LoginResult{}, domain.ErrCredentialsRequired()
	}

	u, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		// Only not-found is hidden behind invalid credentials; a storage
		// fault must surface as such, not as a rejected login.
		if domain.Is(err, "employee_not_found") {
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.signer.Sign(u.ID, u.Email, u.Role, s.tokenTTL)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	return LoginResult{Employee: u, Token: tok}, nil
}
