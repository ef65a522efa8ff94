package dto

import (
	"github.com/hrkit/employee-service/internal/application/employee"
	"github.com/hrkit/employee-service/internal/domain"
)

// EmployeeView is the public shape of an account. The password hash never
// leaves the server.
type EmployeeView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewEmployeeView(e domain.Employee) EmployeeView {
	return EmployeeView{ID: e.ID, Email: e.Email, Role: string(e.Role)}
}

type RegisterResponse struct {
	Message  string       `json:"message"`
	Employee EmployeeView `json:"employee"`
}

type LoginResponse struct {
	Message  string       `json:"message"`
	Token    string       `json:"token"`
	Employee EmployeeView `json:"employee"`
}

type ValidateResponse struct {
	Message  string       `json:"message"`
	Employee EmployeeView `json:"employee"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileView is one profile joined with its owning account.
type ProfileView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Age   int    `json:"age"`
}

func NewProfileView(p employee.EmployeeProfile) ProfileView {
	return ProfileView{
		ID:    p.ID,
		Email: p.Email,
		Role:  string(p.Role),
		Name:  p.Name,
		Phone: p.Phone,
		Age:   p.Age,
	}
}

type AddProfileResponse struct {
	Message string          `json:"message"`
	Data    ProfileDataView `json:"data"`
}

// ProfileDataView is the raw profile row, without the account join.
type ProfileDataView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Age        int    `json:"age"`
	EmployeeID int64  `json:"employeeId"`
}

func NewProfileDataView(p domain.Profile) ProfileDataView {
	return ProfileDataView{
		ID:         p.ID,
		Name:       p.Name,
		Phone:      p.Phone,
		Age:        p.Age,
		EmployeeID: p.EmployeeID,
	}
}

type GetProfileResponse struct {
	Message string      `json:"message"`
	Data    ProfileView `json:"data"`
}

// DirectoryEntryView is one row of the admin directory listing. Profile
// fields are null when the employee has not filled a profile yet.
type DirectoryEntryView struct {
	ID    int64   `json:"id"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Age   *int    `json:"age"`
}

func NewDirectoryEntryView(e employee.DirectoryEntry) DirectoryEntryView {
	return DirectoryEntryView{
		ID:    e.ID,
		Email: e.Email,
		Role:  string(e.Role),
		Name:  e.Name,
		Phone: e.Phone,
		Age:   e.Age,
	}
}

type ListProfilesResponse struct {
	Message string               `json:"message"`
	Data    []DirectoryEntryView `json:"data"`
}

type UpdateEmployeeResponse struct {
	Message       string   `json:"message"`
	UpdatedFields []string `json:"updatedFields"`
}
