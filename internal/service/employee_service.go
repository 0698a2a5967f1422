package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"staffdesk/internal/cache"
	apperrors "staffdesk/internal/errors"
	"staffdesk/internal/metrics"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

// employeeCacheTTL bounds how stale a cached list can get when a
// concurrent write races the populate below.
const employeeCacheTTL = 5 * time.Minute

// CreateEmployeeInput carries the fields for a new employee record.
type CreateEmployeeInput struct {
	FullName   string
	Department string
	Position   string
	Email      string
	Phone      string
	Salary     decimal.Decimal
}

// EmployeeService handles admin-scoped employee operations with a
// cache-aside list. Writes go to the database first, then remove the
// admin's cache key; reads populate it lazily.
type EmployeeService interface {
	Create(ctx context.Context, adminID uint, input CreateEmployeeInput) (*model.Employee, error)
	Delete(ctx context.Context, adminID, id uint) (*model.Employee, error)
	List(ctx context.Context, adminID uint) ([]model.EmployeeResponse, error)
	GetByName(ctx context.Context, adminID uint, name string) (*model.EmployeeResponse, error)
	Search(ctx context.Context, adminID uint, query string) ([]model.EmployeeResponse, error)
}

type employeeService struct {
	repo    repository.EmployeeRepository
	cache   cache.Store
	metrics *metrics.Metrics
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository, cacheStore cache.Store, m *metrics.Metrics) EmployeeService {
	return &employeeService{
		repo:    repo,
		cache:   cacheStore,
		metrics: m,
	}
}

func (s *employeeService) cacheKey(adminID uint) string {
	return fmt.Sprintf("employees_v2_%d", adminID)
}

// Create persists a new employee owned by adminID and invalidates the
// admin's cached list before returning.
func (s *employeeService) Create(ctx context.Context, adminID uint, input CreateEmployeeInput) (*model.Employee, error) {
	if input.Salary.IsNegative() {
		return nil, apperrors.ErrInvalidSalary
	}

	employee := &model.Employee{
		AdminID:    adminID,
		FullName:   input.FullName,
		Department: input.Department,
		Position:   input.Position,
		Email:      input.Email,
		Phone:      input.Phone,
		Salary:     input.Salary,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.invalidate(ctx, adminID)

	return employee, nil
}

// Delete removes an employee owned by adminID. A record owned by another
// admin resolves as not found, and nothing is deleted.
func (s *employeeService) Delete(ctx context.Context, adminID, id uint) (*model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, adminID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	if err := s.repo.Delete(ctx, employee); err != nil {
		return nil, fmt.Errorf("delete employee: %w", err)
	}

	s.invalidate(ctx, adminID)

	return employee, nil
}

// List returns the admin's employees, serving from the cache when
// possible. On a miss the database result is cached for five minutes,
// but only when non-empty: an empty list is never cached, so a newly
// emptied admin always re-queries until a record exists again.
//
// Two concurrent writers can interleave invalidate and populate so that
// a list assembled before the second commit lands in the cache; the TTL
// caps that staleness at five minutes. The window is accepted.
func (s *employeeService) List(ctx context.Context, adminID uint) ([]model.EmployeeResponse, error) {
	key := s.cacheKey(adminID)

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.EmployeeResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			s.metrics.CacheHits.Inc()
			return cached, nil
		}
	}
	s.metrics.CacheMisses.Inc()

	employees, err := s.repo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := model.NewEmployeeResponses(employees)

	if len(responses) > 0 {
		if payload, err := json.Marshal(responses); err == nil {
			_ = s.cache.Set(ctx, key, payload, employeeCacheTTL)
		}
	}

	return responses, nil
}

// GetByName returns the admin's employee with an exact full-name match.
// The cache is not consulted.
func (s *employeeService) GetByName(ctx context.Context, adminID uint, name string) (*model.EmployeeResponse, error) {
	employee, err := s.repo.FindByName(ctx, adminID, name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee by name: %w", err)
	}
	response := model.NewEmployeeResponse(employee)
	return &response, nil
}

// Search returns the admin's employees whose full name contains query,
// case-insensitively. No match is an empty result, not an error.
func (s *employeeService) Search(ctx context.Context, adminID uint, query string) ([]model.EmployeeResponse, error) {
	employees, err := s.repo.SearchByName(ctx, adminID, query)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	return model.NewEmployeeResponses(employees), nil
}

func (s *employeeService) invalidate(ctx context.Context, adminID uint) {
	_ = s.cache.Remove(ctx, s.cacheKey(adminID))
	s.metrics.CacheInvalidations.Inc()
}
