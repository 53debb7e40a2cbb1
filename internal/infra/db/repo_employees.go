package db

import (
	"context"
	"errors"
	"time"

	"darum/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(conn *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: conn}
}

type employeeRow struct {
	EmployeeModel
	DepartmentName *string
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var rows []employeeRow
	err := r.employeeQuery(ctx).Order("employees.created_at").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return employeesFromRows(rows), nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	if r.db == nil {
		return domain.Employee{}, errDBUnavailable
	}
	var row employeeRow
	err := r.employeeQuery(ctx).Where("employees.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrNotFound
		}
		return domain.Employee{}, err
	}
	return employeeFromRow(row), nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	if r.db == nil {
		return domain.Employee{}, errDBUnavailable
	}
	var row employeeRow
	err := r.employeeQuery(ctx).Where("employees.email = ?", email).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrNotFound
		}
		return domain.Employee{}, err
	}
	return employeeFromRow(row), nil
}

func (r *EmployeeRepository) ListByDepartmentName(ctx context.Context, name string) ([]domain.Employee, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var rows []employeeRow
	err := r.employeeQuery(ctx).
		Where("LOWER(departments.name) = LOWER(?)", name).
		Order("employees.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return employeesFromRows(rows), nil
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&EmployeeModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	if r.db == nil {
		return domain.Employee{}, errDBUnavailable
	}
	id, err := newUUID()
	if err != nil {
		return domain.Employee{}, err
	}
	now := time.Now().UTC()
	model := EmployeeModel{
		ID:        id,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
		Status:    string(employee.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if employee.DepartmentID != "" {
		departmentID := employee.DepartmentID
		model.DepartmentID = &departmentID
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
		return domain.Employee{}, err
	}
	return r.GetByID(ctx, model.ID)
}

func (r *EmployeeRepository) Update(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	if r.db == nil {
		return domain.Employee{}, errDBUnavailable
	}
	updates := map[string]any{
		"first_name": employee.FirstName,
		"last_name":  employee.LastName,
		"email":      employee.Email,
		"status":     string(employee.Status),
		"updated_at": time.Now().UTC(),
	}
	if employee.DepartmentID != "" {
		updates["department_id"] = employee.DepartmentID
	}
	result := r.db.WithContext(ctx).Model(&EmployeeModel{}).
		Where("id = ?", employee.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
		return domain.Employee{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Employee{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, employee.ID)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&EmployeeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) employeeQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&EmployeeModel{}).
		Select("employees.*, departments.name AS department_name").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id")
}

func employeeFromRow(row employeeRow) domain.Employee {
	employee := domain.Employee{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Status:    domain.EmployeeStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.EmployeeModel.DepartmentID != nil {
		employee.DepartmentID = *row.EmployeeModel.DepartmentID
	}
	if row.DepartmentName != nil {
		employee.DepartmentName = *row.DepartmentName
	}
	return employee
}

func employeesFromRows(rows []employeeRow) []domain.Employee {
	out := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, employeeFromRow(row))
	}
	return out
}
