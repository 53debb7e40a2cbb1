package usecase

import (
	"context"
	"log"

	"darum/internal/domain"
)

// AccountProvisioner creates a directory account for a newly added employee.
type AccountProvisioner interface {
	Provision(ctx context.Context, email, name string) error
}

type Employees struct {
	Employees   EmployeeRepository
	Departments DepartmentRepository
	Accounts    AccountProvisioner
}

type EmployeeInput struct {
	FirstName    string
	LastName     string
	Email        string
	DepartmentID string
}

func (uc *Employees) Add(ctx context.Context, input EmployeeInput) (domain.Employee, error) {
	exists, err := uc.Employees.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return domain.Employee{}, err
	}
	if exists {
		return domain.Employee{}, domain.ErrDuplicateEmail
	}

	employee := domain.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Status:    domain.EmployeeStatusActive,
	}
	if input.DepartmentID != "" {
		department, err := uc.Departments.GetByID(ctx, input.DepartmentID)
		if err != nil {
			return domain.Employee{}, err
		}
		employee.DepartmentID = department.ID
		employee.DepartmentName = department.Name
	}

	created, err := uc.Employees.Create(ctx, employee)
	if err != nil {
		return domain.Employee{}, err
	}

	// Directory account creation is best-effort; the employee record stands
	// even if provisioning fails.
	if uc.Accounts != nil {
		if err := uc.Accounts.Provision(ctx, created.Email, created.FirstName+" "+created.LastName); err != nil {
			log.Printf("provision account for %s: %v", created.Email, err)
		}
	}
	return created, nil
}

func (uc *Employees) List(ctx context.Context) ([]domain.Employee, error) {
	return uc.Employees.List(ctx)
}

func (uc *Employees) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	return uc.Employees.GetByID(ctx, id)
}

func (uc *Employees) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	return uc.Employees.GetByEmail(ctx, email)
}

func (uc *Employees) ListByDepartment(ctx context.Context, departmentName string) ([]domain.Employee, error) {
	return uc.Employees.ListByDepartmentName(ctx, departmentName)
}

func (uc *Employees) Update(ctx context.Context, id string, input EmployeeInput) (domain.Employee, error) {
	existing, err := uc.Employees.GetByID(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	if input.Email != existing.Email {
		exists, err := uc.Employees.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return domain.Employee{}, err
		}
		if exists {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = input.Email
	if input.DepartmentID != "" {
		department, err := uc.Departments.GetByID(ctx, input.DepartmentID)
		if err != nil {
			return domain.Employee{}, err
		}
		existing.DepartmentID = department.ID
		existing.DepartmentName = department.Name
	}
	return uc.Employees.Update(ctx, existing)
}

func (uc *Employees) Delete(ctx context.Context, id string) error {
	if _, err := uc.Employees.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.Employees.Delete(ctx, id)
}
