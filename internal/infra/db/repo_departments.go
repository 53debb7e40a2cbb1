package db

import (
	"context"
	"errors"
	"time"

	"darum/internal/domain"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(conn *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: conn}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []DepartmentModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Department, 0, len(models))
	for _, model := range models {
		department, err := r.withEmployeeCount(ctx, model)
		if err != nil {
			return nil, err
		}
		out = append(out, department)
	}
	return out, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (domain.Department, error) {
	if r.db == nil {
		return domain.Department{}, errDBUnavailable
	}
	var model DepartmentModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Department{}, domain.ErrNotFound
		}
		return domain.Department{}, err
	}
	return r.withEmployeeCount(ctx, model)
}

func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (domain.Department, error) {
	if r.db == nil {
		return domain.Department{}, errDBUnavailable
	}
	var model DepartmentModel
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Department{}, domain.ErrNotFound
		}
		return domain.Department{}, err
	}
	return r.withEmployeeCount(ctx, model)
}

func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&DepartmentModel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DepartmentRepository) CountEmployees(ctx context.Context, id string) (int64, error) {
	if r.db == nil {
		return 0, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&EmployeeModel{}).
		Where("department_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, department domain.Department) (domain.Department, error) {
	if r.db == nil {
		return domain.Department{}, errDBUnavailable
	}
	id, err := newUUID()
	if err != nil {
		return domain.Department{}, err
	}
	now := time.Now().UTC()
	model := DepartmentModel{
		ID:          id,
		Name:        department.Name,
		Description: department.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Department{}, domain.ErrDuplicateName
		}
		return domain.Department{}, err
	}
	return departmentFromModel(model, 0), nil
}

func (r *DepartmentRepository) Update(ctx context.Context, department domain.Department) (domain.Department, error) {
	if r.db == nil {
		return domain.Department{}, errDBUnavailable
	}
	updates := map[string]any{
		"name":        department.Name,
		"description": department.Description,
		"updated_at":  time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Model(&DepartmentModel{}).
		Where("id = ?", department.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.Department{}, domain.ErrDuplicateName
		}
		return domain.Department{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Department{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, department.ID)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&DepartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) withEmployeeCount(ctx context.Context, model DepartmentModel) (domain.Department, error) {
	count, err := r.CountEmployees(ctx, model.ID)
	if err != nil {
		return domain.Department{}, err
	}
	return departmentFromModel(model, count), nil
}

func departmentFromModel(model DepartmentModel, employeeCount int64) domain.Department {
	return domain.Department{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		EmployeeCount: employeeCount,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
