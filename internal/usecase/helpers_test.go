package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"darum/internal/domain"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
	next  int
}

func newMemUsers(seed ...domain.User) *memUsers {
	m := &memUsers{users: make(map[string]domain.User)}
	for _, user := range seed {
		m.users[user.Email] = user
	}
	return m
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (m *memUsers) Create(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return domain.User{}, domain.ErrDuplicateEmail
	}
	m.next++
	user.ID = "user-" + strconv.Itoa(m.next)
	m.users[user.Email] = user
	return user, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrBadCredentials
	}
	return nil
}

type fakeAuth struct {
	users  *memUsers
	hasher plainHasher
}

func (a *fakeAuth) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.Principal{}, domain.ErrBadCredentials
	}
	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.Principal{}, domain.ErrBadCredentials
	}
	return domain.NewPrincipal(user), nil
}

type fakeTokens struct {
	fail   bool
	expiry time.Time
}

func (f *fakeTokens) Issue(principal domain.Principal) (string, error) {
	if f.fail {
		return "", errors.New("signing failed")
	}
	return "access-" + principal.Subject, nil
}

func (f *fakeTokens) IssueRefresh(principal domain.Principal) (string, error) {
	if f.fail {
		return "", errors.New("signing failed")
	}
	return "refresh-" + principal.Subject, nil
}

func (f *fakeTokens) Expiry() time.Time {
	return f.expiry
}

type memAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (m *memAuditRepo) Append(_ context.Context, event domain.AuditEvent) (domain.AuditEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = "audit-" + strconv.Itoa(len(m.events)+1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *memAuditRepo) byType(eventType domain.AuditEventType) []domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AuditEvent
	for _, event := range m.events {
		if event.EventType == eventType {
			out = append(out, event)
		}
	}
	return out
}

type memEmployees struct {
	mu        sync.Mutex
	employees map[string]domain.Employee
	next      int
}

func newMemEmployees() *memEmployees {
	return &memEmployees{employees: make(map[string]domain.Employee)}
}

func (m *memEmployees) List(_ context.Context) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Employee, 0, len(m.employees))
	for _, employee := range m.employees {
		out = append(out, employee)
	}
	return out, nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	employee, ok := m.employees[id]
	if !ok {
		return domain.Employee{}, domain.ErrNotFound
	}
	return employee, nil
}

func (m *memEmployees) GetByEmail(_ context.Context, email string) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, employee := range m.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return domain.Employee{}, domain.ErrNotFound
}

func (m *memEmployees) ListByDepartmentName(_ context.Context, name string) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Employee
	for _, employee := range m.employees {
		if employee.DepartmentName == name {
			out = append(out, employee)
		}
	}
	return out, nil
}

func (m *memEmployees) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, employee := range m.employees {
		if employee.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEmployees) Create(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	employee.ID = "emp-" + strconv.Itoa(m.next)
	m.employees[employee.ID] = employee
	return employee, nil
}

func (m *memEmployees) Update(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[employee.ID]; !ok {
		return domain.Employee{}, domain.ErrNotFound
	}
	m.employees[employee.ID] = employee
	return employee, nil
}

func (m *memEmployees) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.employees, id)
	return nil
}

type memDepartments struct {
	mu          sync.Mutex
	departments map[string]domain.Department
	counts      map[string]int64
	next        int
}

func newMemDepartments() *memDepartments {
	return &memDepartments{
		departments: make(map[string]domain.Department),
		counts:      make(map[string]int64),
	}
}

func (m *memDepartments) List(_ context.Context) ([]domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Department, 0, len(m.departments))
	for _, department := range m.departments {
		out = append(out, department)
	}
	return out, nil
}

func (m *memDepartments) GetByID(_ context.Context, id string) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	department, ok := m.departments[id]
	if !ok {
		return domain.Department{}, domain.ErrNotFound
	}
	return department, nil
}

func (m *memDepartments) GetByName(_ context.Context, name string) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, department := range m.departments {
		if department.Name == name {
			return department, nil
		}
	}
	return domain.Department{}, domain.ErrNotFound
}

func (m *memDepartments) ExistsByName(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, department := range m.departments {
		if department.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDepartments) CountEmployees(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id], nil
}

func (m *memDepartments) Create(_ context.Context, department domain.Department) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	department.ID = "dept-" + strconv.Itoa(m.next)
	m.departments[department.ID] = department
	return department, nil
}

func (m *memDepartments) Update(_ context.Context, department domain.Department) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.departments[department.ID]; !ok {
		return domain.Department{}, domain.ErrNotFound
	}
	m.departments[department.ID] = department
	return department, nil
}

func (m *memDepartments) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.departments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.departments, id)
	return nil
}

type failingProvisioner struct {
	calls int
}

func (p *failingProvisioner) Provision(context.Context, string, string) error {
	p.calls++
	return fmt.Errorf("directory unavailable")
}
