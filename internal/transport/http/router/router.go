package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrkit/employee-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Auth      AuthHandler
	Employees EmployeeHandler

	AuthMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Employees == nil {
		return nil, fmt.Errorf("nil Employee handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.With(deps.AuthMW).Post("/register", deps.Auth.Register)
			r.With(deps.AuthMW).Get("/validate", deps.Auth.Validate)
			r.With(deps.AuthMW, deps.AdminMW).Delete("/{id}", deps.Auth.DeleteAccount)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Post("/add", deps.Employees.Add)
			r.Put("/edit/{id}", deps.Employees.Edit)
			r.Get("/{id}", deps.Employees.Get)
			r.Get("/", deps.Employees.List)
			r.With(deps.AdminMW).Delete("/{id}", deps.Employees.Delete)
		})
	})

	return r, nil
}
