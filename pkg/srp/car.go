// Package srp illustrates the Single Responsibility Principle: a module
// should have only one reason to change.
//
// A single Car interface that drives, gets serviced and keeps the driver
// comfortable changes whenever any of those concerns change. Splitting it into
// Drivable, Maintainable and Comfortable gives each role one reason to change,
// and callers depend only on the role they use.
package srp

// Drivable covers the controls used while driving.
type Drivable interface {
	Accelerate()
	Brake()
	TurnLeft()
	TurnRight()
}

// Maintainable covers servicing the car.
type Maintainable interface {
	AddFuel()
	ChangeOil()
	RotateTires()
}

// Comfortable covers cabin features.
type Comfortable interface {
	AdjustDriverSeat()
	TurnOnAC()
	PlayCD()
}

// Car satisfies all three roles. The methods are intentionally empty.
type Car struct{}

var (
	_ Drivable     = Car{}
	_ Maintainable = Car{}
	_ Comfortable  = Car{}
)

func (Car) Accelerate() {}
func (Car) Brake() {}
func (Car) TurnLeft() {}
func (Car) TurnRight() {}

func (Car) AddFuel() {}
func (Car) ChangeOil() {}
func (Car) RotateTires() {}

func (Car) AdjustDriverSeat() {}
func (Car) TurnOnAC() {}
func (Car) PlayCD() {}
