package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff record owned by exactly one admin. The owner
// reference is never exposed through the API.
type Employee struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	AdminID    uint            `json:"-" gorm:"column:admin_id;not null;index"`
	FullName   string          `json:"full_name" gorm:"column:full_name;size:255;not null;index"`
	Department string          `json:"department" gorm:"size:255;not null"`
	Position   string          `json:"position" gorm:"size:255;not null"`
	Email      string          `json:"email" gorm:"size:255;not null"`
	Phone      string          `json:"phone" gorm:"size:64;not null"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:decimal(20,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmployeeResponse is the API and cache projection of an Employee.
// This is also the shape serialized into the per-admin list cache, so
// Salary stays a decimal to survive the JSON round trip exactly.
type EmployeeResponse struct {
	ID         uint            `json:"id"`
	FullName   string          `json:"full_name"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Salary     decimal.Decimal `json:"salary"`
}

// NewEmployeeResponse projects an Employee into its response shape.
func NewEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Department: e.Department,
		Position:   e.Position,
		Email:      e.Email,
		Phone:      e.Phone,
		Salary:     e.Salary,
	}
}

// NewEmployeeResponses projects a slice of Employees.
func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, NewEmployeeResponse(&employees[i]))
	}
	return responses
}
