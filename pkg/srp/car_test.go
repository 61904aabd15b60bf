package srp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder implements only Drivable and records the calls it receives.
type recorder struct{ calls []string }

func (r *recorder) Accelerate() { r.calls = append(r.calls, "accelerate") }
func (r *recorder) Brake() { r.calls = append(r.calls, "brake") }
func (r *recorder) TurnLeft() { r.calls = append(r.calls, "left") }
func (r *recorder) TurnRight() { r.calls = append(r.calls, "right") }

func TestRoles(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want []Role
	}{
		{name: "car takes every role", v: Car{}, want: []Role{RoleDriving, RoleMaintenance, RoleComfort}},
		{name: "driving-only type", v: &recorder{}, want: []Role{RoleDriving}},
		{name: "unrelated type", v: 42, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Roles(tt.v))
		})
	}
}

func TestDrive_UsesOnlyDrivable(t *testing.T) {
	r := &recorder{}
	Drive(r)
	assert.Equal(t, []string{"accelerate", "left", "right", "brake"}, r.calls)
}

func TestCar_SatisfiesEveryClient(t *testing.T) {
	car := Car{}
	assert.NotPanics(t, func() {
		Drive(car)
		Service(car)
	})
}
