package http

import (
	"net/http"
	"time"

	"darum/internal/domain"
	"darum/internal/usecase"

	"github.com/gin-gonic/gin"
)

type employeeRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"departmentId"`
}

type employeeResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Status         string    `json:"status"`
	DepartmentID   string    `json:"departmentId,omitempty"`
	DepartmentName string    `json:"departmentName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s *Server) handleListEmployees(c *gin.Context) {
	employees, err := s.employeesUC.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Employees retrieved successfully", buildEmployeeResponses(employees))
}

func (s *Server) handleGetEmployee(c *gin.Context) {
	employee, err := s.employeesUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Employee retrieved successfully", buildEmployeeResponse(employee))
}

func (s *Server) handleAddEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, statusError, "Invalid request body")
		return
	}
	employee, err := s.employeesUC.Add(c.Request.Context(), usecase.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, "Employee added successfully", buildEmployeeResponse(employee))
}

func (s *Server) handleUpdateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, statusError, "Invalid request body")
		return
	}
	employee, err := s.employeesUC.Update(c.Request.Context(), c.Param("id"), usecase.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Employee updated successfully", buildEmployeeResponse(employee))
}

func (s *Server) handleDeleteEmployee(c *gin.Context) {
	if err := s.employeesUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Employee deleted successfully", nil)
}

func (s *Server) handleEmployeesByDepartment(c *gin.Context) {
	employees, err := s.employeesUC.ListByDepartment(c.Request.Context(), c.Param("dept"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Employees retrieved successfully", buildEmployeeResponses(employees))
}

func (s *Server) handleMyProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		writeTranslated(c, domain.ErrUnknownSubject)
		return
	}
	employee, err := s.employeesUC.GetByEmail(c.Request.Context(), principal.Subject)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Employee retrieved successfully", buildEmployeeResponse(employee))
}

func buildEmployeeResponse(employee domain.Employee) employeeResponse {
	return employeeResponse{
		ID:             employee.ID,
		FirstName:      employee.FirstName,
		LastName:       employee.LastName,
		Email:          employee.Email,
		Status:         string(employee.Status),
		DepartmentID:   employee.DepartmentID,
		DepartmentName: employee.DepartmentName,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}
}

func buildEmployeeResponses(employees []domain.Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(employees))
	for _, employee := range employees {
		out = append(out, buildEmployeeResponse(employee))
	}
	return out
}
