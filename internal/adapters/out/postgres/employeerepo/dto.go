// Package employeerepo provides data transfer objects and mapping functions
// for employee persistence.
package employeerepo

import (
	"autoservice/internal/core/domain/model/employee"
	"autoservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employees.
type EmployeeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// fromDomain converts an employee aggregate to its database representation.
func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Role: string(aggregate.Role()),
	}
}

// toDomain converts a database DTO to an employee aggregate.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := employee.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, dto.Name, role)
}
