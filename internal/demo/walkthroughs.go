package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/solid/pkg/dip"
	"github.com/mesh-intelligence/solid/pkg/isp"
	"github.com/mesh-intelligence/solid/pkg/lsp"
	"github.com/mesh-intelligence/solid/pkg/lsp/polygon"
	"github.com/mesh-intelligence/solid/pkg/ocp"
	"github.com/mesh-intelligence/solid/pkg/srp"
)

func runSRP(w io.Writer, _ Config) error {
	car := srp.Car{}
	srp.Drive(car)
	srp.Service(car)

	roles := srp.Roles(car)
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	_, err := fmt.Fprintf(w, "car roles: %s\n", strings.Join(names, ", "))
	return err
}

// playersJSON feeds the generic fetcher in the open/closed walkthrough.
const playersJSON = `[{"id":1,"name":"mia","team":"red"},{"id":2,"name":"noah","team":"blue"}]`

func runOCP(w io.Writer, _ Config) error {
	f := ocp.NewFetcher[ocp.Player](strings.NewReader(playersJSON))

	var players []ocp.Player
	if err := f.Fetch(func(items []ocp.Player) { players = items }); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "fetched %d players\n", len(players)); err != nil {
		return err
	}

	var users []ocp.User
	if err := (ocp.Fetcher[ocp.User]{}).Fetch(func(items []ocp.User) { users = items }); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "fetched %d users\n", len(users))
	return err
}

func runLSP(w io.Writer, cfg Config) error {
	rect := &lsp.Rectangle{}
	rect.SetWidth(cfg.RectangleWidth)
	rect.SetHeight(cfg.RectangleHeight)

	square := &lsp.Square{}
	square.SetWidth(cfg.SquareSide)

	lines := []string{
		fmt.Sprintf("rectangle area: %g", rect.Area()),
		fmt.Sprintf("square area: %g", square.Area()),
		fmt.Sprintf("square resized to %gx%g: area %g, expected %g",
			cfg.RectangleWidth, cfg.RectangleHeight,
			lsp.Resize(square, cfg.RectangleWidth, cfg.RectangleHeight),
			cfg.RectangleWidth*cfg.RectangleHeight),
	}

	rect2, err := polygon.NewRectangle(cfg.RectangleWidth, cfg.RectangleHeight)
	if err != nil {
		return err
	}
	square2, err := polygon.NewSquare(cfg.SquareSide)
	if err != nil {
		return err
	}
	lines = append(lines,
		fmt.Sprintf("polygon rectangle area: %g", rect2.Area()),
		fmt.Sprintf("polygon square area: %g", square2.Area()),
	)
	return writeLines(w, lines)
}

func runISP(w io.Writer, cfg Config) error {
	var fat isp.OrderService = isp.BurgerOrderService{Out: w}
	if err := fat.OrderBurgers(cfg.Burgers); err != nil {
		return err
	}
	if err := fat.OrderFries(); !errors.Is(err, isp.ErrNotSupported) {
		return fmt.Errorf("expected %v from forced method, got %v", isp.ErrNotSupported, err)
	}
	if _, err := fmt.Fprintln(w, "burger order service cannot order fries"); err != nil {
		return err
	}

	meal := isp.Meal{
		Burgers: isp.BurgerService{Out: w},
		Fries:   isp.FriesService{Out: w},
	}
	return meal.Order(cfg.Burgers)
}

func runDIP(w io.Writer, cfg Config) error {
	storage := dip.NewMemoryStorage()
	creds := dip.NewUserCredentials(storage)
	settings := dip.NewUserSettings(storage)

	creds.StoreCredentials(cfg.Username, "********")
	settings.SetRememberMe(cfg.RememberMe)

	user, _ := creds.Username()
	lines := []string{
		fmt.Sprintf("memory storage: username %s, remember me %t", user, settings.RememberMe()),
	}

	keychain := dip.NewUserCredentials(nil)
	keychain.StoreCredentials(cfg.Username, "********")
	_, ok := keychain.Username()
	lines = append(lines,
		fmt.Sprintf("keychain storage: username stored %t", ok),
		fmt.Sprintf("user defaults storage: remember me %t", dip.NewUserSettings(nil).RememberMe()),
	)
	return writeLines(w, lines)
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
