package domain

import "time"

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusOnLeave  EmployeeStatus = "ON_LEAVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Status         EmployeeStatus
	DepartmentID   string
	DepartmentName string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Department struct {
	ID            string
	Name          string
	Description   string
	EmployeeCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
