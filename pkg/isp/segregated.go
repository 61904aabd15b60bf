package isp

import (
	"errors"
	"io"
)

// ErrMissingService is returned by Meal.Order when either role is unset.
var ErrMissingService = errors.New("meal needs both a burgers and a fries service")

// BurgersOrderer is the role interface for burger orders.
type BurgersOrderer interface {
	OrderBurgers(quantity int) error
}

// FriesOrderer is the role interface for fries orders.
type FriesOrderer interface {
	OrderFries() error
}

// BurgerService implements BurgersOrderer and nothing else.
type BurgerService struct {
	Out io.Writer
}

var _ BurgersOrderer = BurgerService{}

// OrderBurgers writes the order to Out.
func (s BurgerService) OrderBurgers(quantity int) error {
	return orderBurgers(s.Out, quantity)
}

// FriesService implements FriesOrderer and nothing else.
type FriesService struct {
	Out io.Writer
}

var _ FriesOrderer = FriesService{}

// OrderFries writes the order to Out.
func (s FriesService) OrderFries() error {
	return orderFries(s.Out)
}

// Meal combines the two roles for a client that needs both. Each field can be
// backed by a different service.
type Meal struct {
	Burgers BurgersOrderer
	Fries   FriesOrderer
}

// Order places a burger order followed by fries, stopping at the first error.
// Both fields must be set; otherwise nothing is ordered.
func (m Meal) Order(burgers int) error {
	if m.Burgers == nil || m.Fries == nil {
		return ErrMissingService
	}
	if err := m.Burgers.OrderBurgers(burgers); err != nil {
		return err
	}
	return m.Fries.OrderFries()
}
