package srp

// Role names a single responsibility of the car.
type Role string

// The three responsibilities split out of the original fat Car interface.
const (
	RoleDriving     Role = "driving"
	RoleMaintenance Role = "maintenance"
	RoleComfort     Role = "comfort"
)

// Roles reports which responsibilities v takes on, in declaration order.
func Roles(v any) []Role {
	var roles []Role
	if _, ok := v.(Drivable); ok {
		roles = append(roles, RoleDriving)
	}
	if _, ok := v.(Maintainable); ok {
		roles = append(roles, RoleMaintenance)
	}
	if _, ok := v.(Comfortable); ok {
		roles = append(roles, RoleComfort)
	}
	return roles
}

// Drive runs a short route. It only needs the driving role, so a change to
// maintenance or comfort features never touches it.
func Drive(d Drivable) {
	d.Accelerate()
	d.TurnLeft()
	d.TurnRight()
	d.Brake()
}

// Service performs routine maintenance through the Maintainable role only.
func Service(m Maintainable) {
	m.AddFuel()
	m.ChangeOil()
	m.RotateTires()
}
