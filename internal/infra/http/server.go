package http

import (
	"net/http"
	"time"

	"darum/internal/config"
	"darum/internal/domain"
	"darum/internal/infra/auth"
	"darum/internal/infra/db"
	"darum/internal/infra/ratelimit"
	"darum/internal/infra/token"
	"darum/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	loginUC       *usecase.Login
	registerUC    *usecase.RegisterUser
	employeesUC   *usecase.Employees
	departmentsUC *usecase.Departments
	audit         *usecase.AuditEmitter

	tokens       *token.Service
	users        userDirectory
	tokenInitErr error

	rateLimiter         domain.RateLimiter
	rateLimitRequests   int
	rateLimitWindow     time.Duration
	rateLimitFailClosed bool
}

func NewServer(cfg config.Config, conn *gorm.DB) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, r: r}
	s.initDeps(conn)
	s.routes()
	return s
}

type ServerDeps struct {
	Login       *usecase.Login
	Register    *usecase.RegisterUser
	Employees   *usecase.Employees
	Departments *usecase.Departments
	Audit       *usecase.AuditEmitter
	Tokens      *token.Service
	Users       usecase.UserRepository
	RateLimiter domain.RateLimiter
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:           cfg,
		r:             r,
		loginUC:       deps.Login,
		registerUC:    deps.Register,
		employeesUC:   deps.Employees,
		departmentsUC: deps.Departments,
		audit:         deps.Audit,
		tokens:        deps.Tokens,
	}
	if deps.Users != nil {
		s.users = deps.Users
	}
	s.initRateLimit(deps.RateLimiter)
	s.routes()
	return s
}

func (s *Server) initDeps(conn *gorm.DB) {
	tokens, err := token.NewService(s.cfg.JWTSecretBase64, s.cfg.AccessTTL, s.cfg.RefreshTTL)
	if err != nil {
		s.tokenInitErr = err
	}
	s.tokens = tokens

	userRepo := db.NewUserRepository(conn)
	employeeRepo := db.NewEmployeeRepository(conn)
	departmentRepo := db.NewDepartmentRepository(conn)

	hasher := &auth.BcryptHasher{}
	manager := auth.NewManager(userRepo, hasher)

	if conn != nil {
		s.audit = usecase.NewAuditEmitter(db.NewAuditEventRepository(conn), nil)
	}
	s.users = userRepo
	s.loginUC = &usecase.Login{
		Auth:   manager,
		Tokens: tokens,
		Audit:  s.audit,
	}
	s.registerUC = &usecase.RegisterUser{
		Users:  userRepo,
		Hasher: hasher,
		Auth:   manager,
		Tokens: tokens,
		Audit:  s.audit,
	}
	s.employeesUC = &usecase.Employees{
		Employees:   employeeRepo,
		Departments: departmentRepo,
		Accounts:    s.registerUC,
	}
	s.departmentsUC = &usecase.Departments{
		Departments: departmentRepo,
	}

	s.initRateLimit(nil)
}

func (s *Server) initRateLimit(override domain.RateLimiter) {
	if override != nil {
		s.rateLimiter = override
	}
	if s.rateLimiter == nil && s.cfg.LoginRateLimit > 0 {
		if s.cfg.RedisAddr != "" {
			if limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB, nil); err == nil {
				s.rateLimiter = limiter
			}
		}
		if s.rateLimiter == nil {
			s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{})
		}
	}
	s.rateLimitRequests = s.cfg.LoginRateLimit
	s.rateLimitWindow = s.cfg.LoginRateWindow
	s.rateLimitFailClosed = s.cfg.RateLimitFailClosed
}

func (s *Server) routes() {
	var auditor tokenAuditor
	if s.audit != nil {
		auditor = s.audit
	}
	s.r.Use(authenticationFilter(s.tokens, s.users, auditor))

	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := s.r.Group("/api/v1/auth")
	{
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/register", requireAnyAuthority(domain.RoleAdmin.Authority()), s.handleRegister)
	}

	employees := s.r.Group("/api/v1/employees")
	{
		adminOnly := requireAnyAuthority(domain.RoleAdmin.Authority())
		employees.GET("", adminOnly, s.handleListEmployees)
		employees.POST("", adminOnly, s.handleAddEmployee)
		employees.GET("/department/:dept",
			requireAnyAuthority(domain.RoleAdmin.Authority(), domain.RoleManager.Authority()),
			s.handleEmployeesByDepartment)
		employees.GET("/me",
			requireAnyAuthority(domain.RoleAdmin.Authority(), domain.RoleManager.Authority(), domain.RoleEmployee.Authority()),
			s.handleMyProfile)
		employees.GET("/:id", adminOnly, s.handleGetEmployee)
		employees.PUT("/:id", adminOnly, s.handleUpdateEmployee)
		employees.DELETE("/:id", adminOnly, s.handleDeleteEmployee)
	}

	departments := s.r.Group("/api/v1/departments")
	departments.Use(requireAnyAuthority(domain.RoleAdmin.Authority()))
	{
		departments.GET("", s.handleListDepartments)
		departments.POST("", s.handleCreateDepartment)
		departments.GET("/name/:name", s.handleDepartmentByName)
		departments.GET("/:id", s.handleGetDepartment)
		departments.PUT("/:id", s.handleUpdateDepartment)
		departments.DELETE("/:id", s.handleDeleteDepartment)
	}
}

func (s *Server) Run() error {
	if s.tokenInitErr != nil {
		return s.tokenInitErr
	}
	return s.r.Run(s.cfg.ListenAddr)
}
