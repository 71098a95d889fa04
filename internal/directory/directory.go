// Package directory is the staff roster: who works here and what they
// are allowed to do. It sits outside the booking core; the menu uses it
// to gate destructive actions behind a staff ID.
package directory

import (
	"fmt"
	"strings"
	"sync"
)

type Role string

const (
	RoleReception    Role = "reception"
	RoleManager      Role = "manager"
	RoleHousekeeping Role = "housekeeping"
)

type Employee struct {
	ID    int
	Name  string
	Email string
	Role  Role
	Area  string
}

type Directory struct {
	mu        sync.RWMutex
	employees []Employee
	nextID    int
}

// Staff IDs start at 100 to keep them visually distinct from the small
// requester and resource IDs they appear next to in menus.
func New() *Directory {
	return &Directory{nextID: 100}
}

// Add validates and registers a new employee. Blank names or emails are
// rejected here, at data entry, never later at lookup time.
func (d *Directory) Add(name string, role Role, email, area string) (Employee, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return Employee{}, fmt.Errorf("employee name and email are required")
	}
	switch role {
	case RoleReception, RoleManager, RoleHousekeeping:
	default:
		return Employee{}, fmt.Errorf("unknown role %q", role)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	emp := Employee{
		ID:    d.nextID,
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  role,
		Area:  area,
	}
	d.nextID++
	d.employees = append(d.employees, emp)
	return emp, nil
}

func (d *Directory) Authenticate(id int) (Employee, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, e := range d.employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

func (d *Directory) HasRole(id int, roles ...Role) bool {
	e, ok := d.Authenticate(id)
	if !ok {
		return false
	}
	for _, r := range roles {
		if e.Role == r {
			return true
		}
	}
	return false
}

func (d *Directory) All() []Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Employee, len(d.employees))
	copy(out, d.employees)
	return out
}
