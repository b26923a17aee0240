package configuration

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = errors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
func (c *Configuration) LoadFile(filePath string) error {
	exists, isDir, err := pathExists(filePath)
	if err != nil {
		return err
	}
	if !exists || isDir {
		return ErrConfigDoesNotExist
	}

	var parser koanf.Parser
	switch filepath.Ext(filePath) {
	case ".json":
		parser = &JSONLowerParser{}
	case ".yaml", ".yml":
		parser = &YAMLLowerParser{}
	default:
		return ErrUnknownConfigFormat
	}

	return c.config.Load(file.Provider(filePath), parser)
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := envKeyToConfigKey(s, prefix)
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Load takes a Provider that either provides a parsed config map[string]interface{}
// in which case pa (Parser) can be nil, or raw bytes to be parsed, where a Parser
// can be provided to parse. Additionally, options can be passed which modify the
// load behavior, such as passing a custom merge function.
func (c *Configuration) Load(p koanf.Provider, pa koanf.Parser, opts ...koanf.Option) error {
	return c.config.Load(p, pa, opts...)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// Exists returns true if the given key exists in the config.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(key)
}

// Get returns the raw value of the given key.
func (c *Configuration) Get(key string) interface{} {
	return c.config.Get(key)
}

// Set sets the value of the given key.
func (c *Configuration) Set(key string, value interface{}) error {
	return c.config.Load(confmap.Provider(map[string]interface{}{key: value}, "."), nil)
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(key)
}

// Strings returns the []string value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(key)
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(key)
}

// Int64 returns the int64 value of the given key.
func (c *Configuration) Int64(key string) int64 {
	return c.config.Int64(key)
}

// Float64 returns the float64 value of the given key.
func (c *Configuration) Float64(key string) float64 {
	return c.config.Float64(key)
}

// Bool returns the bool value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(key)
}

// Duration returns the time.Duration value of the given key.
func (c *Configuration) Duration(key string) time.Duration {
	return c.config.Duration(key)
}

// pathExists returns whether the given file or directory exists.
func pathExists(path string) (exists bool, isDirectory bool, err error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}

		return false, false, err
	}

	return true, fileInfo.IsDir(), nil
}
