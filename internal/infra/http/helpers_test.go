package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"darum/internal/config"
	"darum/internal/domain"
	"darum/internal/infra/auth"
	"darum/internal/infra/ratelimit"
	"darum/internal/infra/token"
	"darum/internal/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var testClock = func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

type memUserRepo struct {
	mu      sync.Mutex
	users   map[string]domain.User
	lookups int
	next    int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	user, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
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

func (m *memUserRepo) delete(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, email)
}

func (m *memUserRepo) lookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups
}

type memEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]domain.Employee
	next      int
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[string]domain.Employee)}
}

func (m *memEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Employee, 0, len(m.employees))
	for _, employee := range m.employees {
		out = append(out, employee)
	}
	return out, nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	employee, ok := m.employees[id]
	if !ok {
		return domain.Employee{}, domain.ErrNotFound
	}
	return employee, nil
}

func (m *memEmployeeRepo) GetByEmail(_ context.Context, email string) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, employee := range m.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return domain.Employee{}, domain.ErrNotFound
}

func (m *memEmployeeRepo) ListByDepartmentName(_ context.Context, name string) ([]domain.Employee, error) {
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

func (m *memEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, employee := range m.employees {
		if employee.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEmployeeRepo) Create(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	employee.ID = "emp-" + strconv.Itoa(m.next)
	m.employees[employee.ID] = employee
	return employee, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, employee domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[employee.ID]; !ok {
		return domain.Employee{}, domain.ErrNotFound
	}
	m.employees[employee.ID] = employee
	return employee, nil
}

func (m *memEmployeeRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.employees, id)
	return nil
}

type memDepartmentRepo struct {
	mu          sync.Mutex
	departments map[string]domain.Department
	counts      map[string]int64
	next        int
}

func newMemDepartmentRepo() *memDepartmentRepo {
	return &memDepartmentRepo{
		departments: make(map[string]domain.Department),
		counts:      make(map[string]int64),
	}
}

func (m *memDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Department, 0, len(m.departments))
	for _, department := range m.departments {
		out = append(out, department)
	}
	return out, nil
}

func (m *memDepartmentRepo) GetByID(_ context.Context, id string) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	department, ok := m.departments[id]
	if !ok {
		return domain.Department{}, domain.ErrNotFound
	}
	return department, nil
}

func (m *memDepartmentRepo) GetByName(_ context.Context, name string) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, department := range m.departments {
		if department.Name == name {
			return department, nil
		}
	}
	return domain.Department{}, domain.ErrNotFound
}

func (m *memDepartmentRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, department := range m.departments {
		if department.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDepartmentRepo) CountEmployees(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id], nil
}

func (m *memDepartmentRepo) Create(_ context.Context, department domain.Department) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	department.ID = "dept-" + strconv.Itoa(m.next)
	m.departments[department.ID] = department
	return department, nil
}

func (m *memDepartmentRepo) Update(_ context.Context, department domain.Department) (domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.departments[department.ID]; !ok {
		return domain.Department{}, domain.ErrNotFound
	}
	m.departments[department.ID] = department
	return department, nil
}

func (m *memDepartmentRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.departments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.departments, id)
	return nil
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

type testEnv struct {
	server      *Server
	tokens      *token.Service
	users       *memUserRepo
	employees   *memEmployeeRepo
	departments *memDepartmentRepo
	audit       *memAuditRepo
}

func seedUser(t *testing.T, users *memUserRepo, email, password string, role domain.Role) domain.User {
	t.Helper()
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := users.Create(context.Background(), domain.User{
		Name:         email,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Enabled:      true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newTestEnv(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	tokens, err := token.NewService(secret, 15*time.Minute, 24*time.Hour, token.WithClock(testClock))
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	users := newMemUserRepo()
	employees := newMemEmployeeRepo()
	departments := newMemDepartmentRepo()
	auditRepo := &memAuditRepo{}
	audit := usecase.NewAuditEmitter(auditRepo, nil)
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}
	manager := auth.NewManager(users, hasher)

	register := &usecase.RegisterUser{
		Users:  users,
		Hasher: hasher,
		Auth:   manager,
		Tokens: tokens,
		Audit:  audit,
	}
	deps := ServerDeps{
		Login: &usecase.Login{
			Auth:   manager,
			Tokens: tokens,
			Audit:  audit,
		},
		Register: register,
		Employees: &usecase.Employees{
			Employees:   employees,
			Departments: departments,
			Accounts:    register,
		},
		Departments: &usecase.Departments{Departments: departments},
		Audit:       audit,
		Tokens:      tokens,
		Users:       users,
		RateLimiter: ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{Now: testClock}),
	}
	return &testEnv{
		server:      NewServerWithDeps(cfg, deps),
		tokens:      tokens,
		users:       users,
		employees:   employees,
		departments: departments,
		audit:       auditRepo,
	}
}

func (env *testEnv) mintToken(t *testing.T, user domain.User) string {
	t.Helper()
	tokenString, err := env.tokens.Issue(domain.NewPrincipal(user))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tokenString
}

func (env *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	env.server.r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) responseBody {
	t.Helper()
	var envelope responseBody
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return envelope
}

func dataField(t *testing.T, envelope responseBody, field string) string {
	t.Helper()
	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", envelope.Data)
	}
	value, _ := data[field].(string)
	return value
}
