// Package isp illustrates the Interface Segregation Principle: clients should
// not be forced to depend on methods they do not use.
//
// OrderService bundles burger and fries ordering, so a burger-only service
// must still implement OrderFries and can only fail at runtime when it is
// called. BurgersOrderer and FriesOrderer split the roles so that an
// unsupported call does not compile.
package isp

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Order errors.
var (
	ErrNotSupported    = errors.New("not supported")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// OrderService is the fat interface that breaks the principle.
type OrderService interface {
	OrderBurgers(quantity int) error
	OrderFries() error
}

// BurgerOrderService only sells burgers but is forced to implement OrderFries.
type BurgerOrderService struct {
	Out io.Writer
}

var _ OrderService = BurgerOrderService{}

// OrderBurgers writes the order to Out.
func (s BurgerOrderService) OrderBurgers(quantity int) error {
	return orderBurgers(s.Out, quantity)
}

// OrderFries always fails with ErrNotSupported.
func (BurgerOrderService) OrderFries() error {
	return fmt.Errorf("order fries: %w", ErrNotSupported)
}

// FriesOrderService only sells fries but is forced to implement OrderBurgers.
type FriesOrderService struct {
	Out io.Writer
}

var _ OrderService = FriesOrderService{}

// OrderBurgers always fails with ErrNotSupported.
func (FriesOrderService) OrderBurgers(int) error {
	return fmt.Errorf("order burgers: %w", ErrNotSupported)
}

// OrderFries writes the order to Out.
func (s FriesOrderService) OrderFries() error {
	return orderFries(s.Out)
}

// orderBurgers and orderFries are shared by both designs. A nil writer means
// standard output.
func orderBurgers(w io.Writer, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("order %d burgers: %w", quantity, ErrInvalidQuantity)
	}
	_, err := fmt.Fprintf(writer(w), "Ordering %d burgers.\n", quantity)
	return err
}

func orderFries(w io.Writer) error {
	_, err := fmt.Fprintln(writer(w), "Ordering fries.")
	return err
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
