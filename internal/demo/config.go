package demo

import (
	"errors"
	"math"
)

// Config holds the inputs the walkthroughs use. The zero value is not valid;
// start from DefaultConfig.
type Config struct {
	RectangleWidth  float64 `json:"rectangle_width" yaml:"rectangle_width"`
	RectangleHeight float64 `json:"rectangle_height" yaml:"rectangle_height"`
	SquareSide      float64 `json:"square_side" yaml:"square_side"`
	Burgers         int     `json:"burgers" yaml:"burgers"`
	RememberMe      bool    `json:"remember_me" yaml:"remember_me"`
	Username        string  `json:"username" yaml:"username"`
}

// Config validation errors.
var (
	ErrDimensionNegative  = errors.New("rectangle and square dimensions must not be negative")
	ErrDimensionNotFinite = errors.New("rectangle and square dimensions must be finite numbers")
	ErrBurgersInvalid     = errors.New("burger quantity must be positive")
	ErrUsernameEmpty      = errors.New("username must not be empty")
)

// DefaultConfig returns the values the walkthroughs were written around.
func DefaultConfig() Config {
	return Config{
		RectangleWidth:  5,
		RectangleHeight: 2,
		SquareSide:      4,
		Burgers:         2,
		RememberMe:      false,
		Username:        "ada",
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	for _, d := range []float64{c.RectangleWidth, c.RectangleHeight, c.SquareSide} {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return ErrDimensionNotFinite
		}
		if d < 0 {
			return ErrDimensionNegative
		}
	}
	if c.Burgers <= 0 {
		return ErrBurgersInvalid
	}
	if c.Username == "" {
		return ErrUsernameEmpty
	}
	return nil
}
