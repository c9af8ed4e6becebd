package directory

import "strings"

// Directory is a read-only id index over positions and employees.
type Directory struct {
	positions map[string]Position
	employees map[string]Employee
}

// New indexes the given records. Later duplicates overwrite earlier ones.
func New(positions []Position, employees []Employee) *Directory {
	d := &Directory{
		positions: make(map[string]Position, len(positions)),
		employees: make(map[string]Employee, len(employees)),
	}
	for _, p := range positions {
		d.positions[strings.TrimSpace(p.ID)] = p
	}
	for _, e := range employees {
		d.employees[strings.TrimSpace(e.ID)] = e
	}
	return d
}

func (d *Directory) PositionOf(id string) (Position, bool) {
	if d == nil {
		return Position{}, false
	}
	p, ok := d.positions[strings.TrimSpace(id)]
	return p, ok
}

func (d *Directory) EmployeeOf(id string) (Employee, bool) {
	if d == nil {
		return Employee{}, false
	}
	e, ok := d.employees[strings.TrimSpace(id)]
	return e, ok
}

func (d *Directory) Positions() int {
	if d == nil {
		return 0
	}
	return len(d.positions)
}

func (d *Directory) Employees() int {
	if d == nil {
		return 0
	}
	return len(d.employees)
}

// OrganizationOf resolves the organization a target belongs to. Organization
// targets resolve to themselves; unknown kinds and ids report false.
func (d *Directory) OrganizationOf(kind, id string) (string, bool) {
	switch kind {
	case "Organization":
		id = strings.TrimSpace(id)
		return id, id != ""
	case "Employee":
		e, ok := d.EmployeeOf(id)
		return e.OrganizationID, ok
	case "Position":
		p, ok := d.PositionOf(id)
		return p.OrganizationID, ok
	default:
		return "", false
	}
}
