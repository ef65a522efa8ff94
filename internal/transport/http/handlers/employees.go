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

// EmployeeHandler serves the profile endpoints: adding the caller's own
// record, partial updates, reads, and the admin directory listing.
type EmployeeHandler struct {
	svc *employee.Service
	aud *audit.Logger
}

func NewEmployeeHandler(svc *employee.Service, aud *audit.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, aud: aud}
}

// Add handles POST /api/employees/add. Fills the caller's own profile.
func (h *EmployeeHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.AddProfileRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.AddProfile(r.Context(), actor, employee.ProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
		Age:   req.Age,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("employee_id", actor.ID).
		Msg("profile_added")
	h.aud.ProfileAdded(r.Context(), actor.ID)

	response.Created(w, dto.AddProfileResponse{
		Message: "Employee data successfully added",
		Data:    dto.NewProfileDataView(p),
	})
}

// Edit handles PUT /api/employees/edit/{id}. Owner or admin.
func (h *EmployeeHandler) Edit(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateEmployeeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateEmployee(r.Context(), actor, id, employee.UpdateInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Age:      req.Age,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("employee_id", id).
		Strs("fields", updated).
		Msg("employee_updated")
	h.aud.ProfileUpdated(r.Context(), id, actor.ID, updated)

	response.OK(w, dto.UpdateEmployeeResponse{
		Message:       "Employee data successfully updated",
		UpdatedFields: updated,
	})
}

// Get handles GET /api/employees/{id}. Owner or admin.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.svc.GetProfile(r.Context(), actor, id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.GetProfileResponse{
		Message: "Employee data successfully retrieved",
		Data:    dto.NewProfileView(p),
	})
}

// List handles GET /api/employees. Admin only; returns every account joined
// with its (possibly absent) profile.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	entries, err := h.svc.ListProfiles(r.Context(), actor)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	views := make([]dto.DirectoryEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, dto.NewDirectoryEntryView(e))
	}

	response.OK(w, dto.ListProfilesResponse{
		Message: "Employee data successfully retrieved",
		Data:    views,
	})
}

// Delete handles DELETE /api/employees/{id}. Admin only; removes the account
// and its profile together.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
