package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/audit"
	"github.com/hrkit/employee-service/internal/domain"
	"github.com/hrkit/employee-service/internal/logger"
	"github.com/hrkit/employee-service/internal/transport/http/dto"
	"github.com/hrkit/employee-service/internal/transport/http/middleware"
	"github.com/hrkit/employee-service/internal/transport/http/response"
)

// AuthHandler serves the account endpoints: register, login, token
// validation, and account removal.
type AuthHandler struct {
	svc *employee.Service
	aud *audit.Logger
}

func NewAuthHandler(svc *employee.Service, aud *audit.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, aud: aud}
}

// Register handles POST /api/auth/register. Admin only.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	created, err := h.svc.Register(r.Context(), actor, employee.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("employee_id", created.ID).
		Str("role", string(created.Role)).
		Msg("employee_registered")
	h.aud.AccountCreated(r.Context(), created.ID, actor.ID, string(created.Role))

	response.Created(w, dto.RegisterResponse{
		Message:  "Employee successfully added",
		Employee: dto.NewEmployeeView(created),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.Is(err, "invalid_credentials") {
			h.aud.LoginFailed(r.Context(), req.Email)
		}
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("employee_id", res.Employee.ID).
		Msg("employee_logged_in")
	h.aud.LoginSuccess(r.Context(), res.Employee.ID, res.Employee.Email)

	response.OK(w, dto.LoginResponse{
		Message:  "Login successful",
		Token:    res.Token,
		Employee: dto.NewEmployeeView(res.Employee),
	})
}

// Validate handles GET /api/auth/validate. The auth middleware has already
// verified the token; this just echoes the identity it carried.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	response.OK(w, dto.ValidateResponse{
		Message: "Token is valid",
		Employee: dto.EmployeeView{
			ID:    actor.ID,
			Email: actor.Email,
			Role:  string(actor.Role),
		},
	})
}

// DeleteAccount handles DELETE /api/auth/{id}. Admin only.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidID())
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), actor, id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("employee_id", id).
		Msg("employee_deleted")
	h.aud.AccountDeleted(r.Context(), id, actor.ID)

	response.OK(w, dto.MessageResponse{Message: "Employee deleted successfully"})
}
