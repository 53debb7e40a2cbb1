package usecase

import (
	"context"
	"time"

	"darum/internal/domain"
)

type Clock func() time.Time

// UserRepository is the user directory: the system of record for principals.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

// AuthenticationManager verifies credentials and yields the authenticated
// principal with authorities derived from its role.
type AuthenticationManager interface {
	Authenticate(ctx context.Context, email, password string) (domain.Principal, error)
}

type TokenIssuer interface {
	Issue(principal domain.Principal) (string, error)
	IssueRefresh(principal domain.Principal) (string, error)
	Expiry() time.Time
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type AuditEventRepository interface {
	Append(ctx context.Context, event domain.AuditEvent) (domain.AuditEvent, error)
}

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (domain.Employee, error)
	ListByDepartmentName(ctx context.Context, name string) ([]domain.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	Update(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id string) (domain.Department, error)
	GetByName(ctx context.Context, name string) (domain.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountEmployees(ctx context.Context, id string) (int64, error)
	Create(ctx context.Context, department domain.Department) (domain.Department, error)
	Update(ctx context.Context, department domain.Department) (domain.Department, error)
	Delete(ctx context.Context, id string) error
}
