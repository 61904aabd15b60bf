package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/solid/internal/demo"
	"github.com/mesh-intelligence/solid/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "SOLID"

	cfgKeyRectangleWidth  = "rectangle.width"
	cfgKeyRectangleHeight = "rectangle.height"
	cfgKeySquareSide      = "square.side"
	cfgKeyBurgers         = "burgers.quantity"
	cfgKeyRememberMe      = "settings.remember_me"
	cfgKeyUsername        = "credentials.username"
)

// configFile is the layout of config.yaml.
type configFile struct {
	Rectangle struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"rectangle"`
	Square struct {
		Side float64 `yaml:"side"`
	} `yaml:"square"`
	Burgers struct {
		Quantity int `yaml:"quantity"`
	} `yaml:"burgers"`
	Settings struct {
		RememberMe bool `yaml:"remember_me"`
	} `yaml:"settings"`
	Credentials struct {
		Username string `yaml:"username"`
	} `yaml:"credentials"`
}

func newConfigFile(c demo.Config) configFile {
	var f configFile
	f.Rectangle.Width = c.RectangleWidth
	f.Rectangle.Height = c.RectangleHeight
	f.Square.Side = c.SquareSide
	f.Burgers.Quantity = c.Burgers
	f.Settings.RememberMe = c.RememberMe
	f.Credentials.Username = c.Username
	return f
}

// loadConfig reads config.yaml from configDir using Viper, layered over the
// walkthrough defaults and under SOLID_* environment variables
// (SOLID_SQUARE_SIDE overrides square.side). A missing config.yaml is not an
// error. The result is validated.
func loadConfig(configDir string) (demo.Config, error) {
	def := demo.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyRectangleWidth, def.RectangleWidth)
	v.SetDefault(cfgKeyRectangleHeight, def.RectangleHeight)
	v.SetDefault(cfgKeySquareSide, def.SquareSide)
	v.SetDefault(cfgKeyBurgers, def.Burgers)
	v.SetDefault(cfgKeyRememberMe, def.RememberMe)
	v.SetDefault(cfgKeyUsername, def.Username)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return demo.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := demo.Config{
		RectangleWidth:  v.GetFloat64(cfgKeyRectangleWidth),
		RectangleHeight: v.GetFloat64(cfgKeyRectangleHeight),
		SquareSide:      v.GetFloat64(cfgKeySquareSide),
		Burgers:         v.GetInt(cfgKeyBurgers),
		RememberMe:      v.GetBool(cfgKeyRememberMe),
		Username:        v.GetString(cfgKeyUsername),
	}
	if err := cfg.Validate(); err != nil {
		return demo.Config{}, fmt.Errorf("config %s: %w", paths.ConfigFile(configDir), err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(newConfigFile(demo.DefaultConfig()))
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
