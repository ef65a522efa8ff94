package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/domain"
)

// JWTSigner issues and verifies HS256 session tokens. Tokens are stateless:
// nothing is stored server-side, verification relies on the signature and
// the exp claim alone.
type JWTSigner struct {
	secret []byte
	issuer string
}

func NewJWTSigner(secret string, issuer string) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type sessionClaims struct {
	EmployeeID int64  `json:"uid"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTSigner) Sign(id int64, email string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		EmployeeID: id,
		Email:      email,
		Role:       string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

func (s *JWTSigner) Verify(token string) (employee.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		// Expired and tampered tokens are the same auth failure to the
		// client; the cause is kept for logging.
		return employee.TokenClaims{}, domain.Wrap(domain.KindAuth, "token_invalid", "Not authorized, invalid token", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return employee.TokenClaims{}, domain.ErrTokenInvalid()
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok || claims.EmployeeID == 0 {
		return employee.TokenClaims{}, domain.ErrTokenData()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return employee.TokenClaims{
		EmployeeID: claims.EmployeeID,
		Email:      claims.Email,
		Role:       role,
		Exp:        exp,
	}, nil
}

// IsExpired reports whether the verification failure was an expiry, for
// callers that want to log the distinction. The client-facing error is the
// same either way.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
