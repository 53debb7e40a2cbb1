package http

import (
	"net/http"
	"time"

	"darum/internal/domain"
	"darum/internal/usecase"

	"github.com/gin-gonic/gin"
)

type departmentCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type departmentUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type departmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	EmployeeCount int64     `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (s *Server) handleListDepartments(c *gin.Context) {
	departments, err := s.departmentsUC.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Departments retrieved successfully", buildDepartmentResponses(departments))
}

func (s *Server) handleGetDepartment(c *gin.Context) {
	department, err := s.departmentsUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Department retrieved successfully", buildDepartmentResponse(department))
}

func (s *Server) handleDepartmentByName(c *gin.Context) {
	department, err := s.departmentsUC.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Department retrieved successfully", buildDepartmentResponse(department))
}

func (s *Server) handleCreateDepartment(c *gin.Context) {
	var req departmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, statusError, "Invalid request body")
		return
	}
	department, err := s.departmentsUC.Create(c.Request.Context(), usecase.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated, "Department created successfully", buildDepartmentResponse(department))
}

func (s *Server) handleUpdateDepartment(c *gin.Context) {
	var req departmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, statusError, "Invalid request body")
		return
	}
	department, err := s.departmentsUC.Update(c.Request.Context(), c.Param("id"), usecase.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Department updated successfully", buildDepartmentResponse(department))
}

func (s *Server) handleDeleteDepartment(c *gin.Context) {
	if err := s.departmentsUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	writeSuccess(c, http.StatusOK, "Department deleted successfully", nil)
}

func buildDepartmentResponse(department domain.Department) departmentResponse {
	return departmentResponse{
		ID:            department.ID,
		Name:          department.Name,
		Description:   department.Description,
		EmployeeCount: department.EmployeeCount,
		CreatedAt:     department.CreatedAt,
		UpdatedAt:     department.UpdatedAt,
	}
}

func buildDepartmentResponses(departments []domain.Department) []departmentResponse {
	out := make([]departmentResponse, 0, len(departments))
	for _, department := range departments {
		out = append(out, buildDepartmentResponse(department))
	}
	return out
}
