package usecase

import (
	"context"

	"darum/internal/domain"
)

type Departments struct {
	Departments DepartmentRepository
}

type DepartmentInput struct {
	Name        string
	Description string
}

func (uc *Departments) List(ctx context.Context) ([]domain.Department, error) {
	return uc.Departments.List(ctx)
}

func (uc *Departments) GetByID(ctx context.Context, id string) (domain.Department, error) {
	return uc.Departments.GetByID(ctx, id)
}

func (uc *Departments) GetByName(ctx context.Context, name string) (domain.Department, error) {
	return uc.Departments.GetByName(ctx, name)
}

func (uc *Departments) Create(ctx context.Context, input DepartmentInput) (domain.Department, error) {
	exists, err := uc.Departments.ExistsByName(ctx, input.Name)
	if err != nil {
		return domain.Department{}, err
	}
	if exists {
		return domain.Department{}, domain.ErrDuplicateName
	}
	return uc.Departments.Create(ctx, domain.Department{
		Name:        input.Name,
		Description: input.Description,
	})
}

// Update applies partial changes: empty fields keep their current value.
func (uc *Departments) Update(ctx context.Context, id string, input DepartmentInput) (domain.Department, error) {
	department, err := uc.Departments.GetByID(ctx, id)
	if err != nil {
		return domain.Department{}, err
	}
	if input.Name != "" && input.Name != department.Name {
		exists, err := uc.Departments.ExistsByName(ctx, input.Name)
		if err != nil {
			return domain.Department{}, err
		}
		if exists {
			return domain.Department{}, domain.ErrDuplicateName
		}
		department.Name = input.Name
	}
	if input.Description != "" {
		department.Description = input.Description
	}
	return uc.Departments.Update(ctx, department)
}

func (uc *Departments) Delete(ctx context.Context, id string) error {
	if _, err := uc.Departments.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := uc.Departments.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDepartmentNotEmpty
	}
	return uc.Departments.Delete(ctx, id)
}
