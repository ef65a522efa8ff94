package http_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/audit"
	"github.com/hrkit/employee-service/internal/domain"
	"github.com/hrkit/employee-service/internal/infrastructure/memory"
	"github.com/hrkit/employee-service/internal/infrastructure/security"
	"github.com/hrkit/employee-service/internal/transport/http/middleware"
	"github.com/hrkit/employee-service/internal/transport/http/response"
	"github.com/hrkit/employee-service/internal/transport/http/router"
)

// env bundles a fully wired router over in-memory repos with real bcrypt and
// a real JWT signer, so tests exercise the same paths production traffic does.
type env struct {
	handler   http.Handler
	employees *memory.EmployeeRepo
	profiles  *memory.ProfileRepo
	hasher    *security.BcryptHasher
	signer    *security.JWTSigner
	svc       *employee.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()

	profiles := memory.NewProfileRepo()
	employees := memory.NewEmployeeRepo().WithProfiles(profiles)
	hasher := security.NewBcryptHasher(4) // min cost; tests don't need real hardness
	signer := security.NewJWTSigner("test-secret", "employee-service-test")

	svc := employee.NewService(employees, profiles, hasher, signer, employee.Config{
		TokenTTL: time.Hour,
	})

	aud := audit.New(zerolog.Nop())

	h, err := router.New(router.Deps{
		Health:    NewHealthHandler(nil),
		Auth:      NewAuthHandler(svc, aud),
		Employees: NewEmployeeHandler(svc, aud),
		AuthMW:    middleware.Auth(signer, response.WriteError),
		AdminMW:   middleware.RequireAdmin(response.WriteError),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	return &env{
		handler:   h,
		employees: employees,
		profiles:  profiles,
		hasher:    hasher,
		signer:    signer,
		svc:       svc,
	}
}

// seed creates an account directly in the repo and returns it with a signed
// session token.
func (e *env) seed(t *testing.T, email, password string, role domain.Role) (domain.Employee, string) {
	t.Helper()

	hash, err := e.hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := e.employees.Create(context.Background(), email, hash, role)
	if err != nil {
		t.Fatalf("seed create: %v", err)
	}
	tok, err := e.signer.Sign(u.ID, u.Email, u.Role, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return u, tok
}

// do fires a request at the router and returns the recorder.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals the response body into out.
func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}

// errBody is the wire shape of error responses.
type errBody struct {
	Message       string   `json:"message"`
	Code          string   `json:"code"`
	MissingFields []string `json:"missingFields"`
}

func wantError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) errBody {
	t.Helper()

	if rr.Code != status {
		t.Fatalf("expected status %d, got %d; body=%s", status, rr.Code, rr.Body.String())
	}
	var eb errBody
	decode(t, rr, &eb)
	if eb.Message != message {
		t.Fatalf("expected message %q, got %q", message, eb.Message)
	}
	return eb
}
