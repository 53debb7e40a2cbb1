package db

import "time"

type UserModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Role         string    `gorm:"not null"`
	Enabled      bool      `gorm:"not null;default:true"`
	Locked       bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type DepartmentModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null;size:100"`
	Description string    `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

type EmployeeModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"not null;size:50"`
	LastName     string    `gorm:"not null;size:50"`
	Email        string    `gorm:"uniqueIndex;not null;size:100"`
	Status       string    `gorm:"not null"`
	DepartmentID *string   `gorm:"type:uuid;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

type AuditEventModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	EventType   string `gorm:"column:event_type;index;not null"`
	SubjectHash string `gorm:"index"`
	RemoteAddr  string
	Result      string `gorm:"not null"`
	ErrorCode   *string
	CreatedAt   time.Time `gorm:"not null"`
}

func (AuditEventModel) TableName() string {
	return "audit_events"
}
