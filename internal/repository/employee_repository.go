package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"staffdesk/internal/model"
)

// EmployeeRepository defines employee persistence operations. Every query
// takes the owning admin ID as a required parameter so records of other
// admins are unreachable by construction.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, adminID, id uint) (*model.Employee, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]model.Employee, error)
	FindByName(ctx context.Context, adminID uint, name string) (*model.Employee, error)
	SearchByName(ctx context.Context, adminID uint, name string) ([]model.Employee, error)
	Delete(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository builds a GORM-backed repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) FindByID(ctx context.Context, adminID, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).
		Where("admin_id = ? AND id = ?", adminID, id).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) FindByName(ctx context.Context, adminID uint, name string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).
		Where("admin_id = ? AND full_name = ?", adminID, name).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) SearchByName(ctx context.Context, adminID uint, name string) ([]model.Employee, error) {
	var employees []model.Employee
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).
		Where("admin_id = ? AND LOWER(full_name) LIKE ?", adminID, pattern).
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) Delete(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Delete(employee).Error
}
