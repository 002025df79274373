/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package config loads the settings of a schema builder from a file and the environment.
//
// Keys in a file follow the field names of Config, for example:
//
//	naming: snake
//	logLevel: debug
//	priorities:
//	  type:
//	    definition: 250
//
// Every key can be overridden by an environment variable prefixed by GQLREFLECT_ in which dots are
// replaced by underscores, for example GQLREFLECT_PRIORITIES_TYPE_DEFINITION.
package config

import (
	"strings"

	"github.com/botobag/gqlreflect/argument"
	"github.com/botobag/gqlreflect/field"
	"github.com/botobag/gqlreflect/gqltype"
	"github.com/botobag/gqlreflect/inputfield"
	"github.com/botobag/gqlreflect/objectfield"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "GQLREFLECT"

// Priorities of the default middlewares of each pipeline
type Priorities struct {
	Type        gqltype.Priorities     `mapstructure:"type"`
	ObjectField objectfield.Priorities `mapstructure:"objectField"`
	InputField  inputfield.Priorities  `mapstructure:"inputField"`
	Argument    argument.Priorities    `mapstructure:"argument"`
}

// Config configures a schema builder.
type Config struct {
	// Naming selects how reflected members are named: "camel", "snake" or "none".
	Naming string `mapstructure:"naming"`

	// LogLevel is a zap level. Logging is disabled when empty.
	LogLevel string `mapstructure:"logLevel"`

	Priorities Priorities `mapstructure:"priorities"`
}

// Default returns the configuration used when none is given.
func Default() *Config {
	return &Config{
		Naming: "camel",
		Priorities: Priorities{
			Type:        gqltype.DefaultPriorities,
			ObjectField: objectfield.DefaultPriorities,
			InputField:  inputfield.DefaultPriorities,
			Argument:    argument.DefaultPriorities,
		},
	}
}

// setDefaults makes viper aware of every key so that environment variables apply to keys absent
// from the file.
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("naming", c.Naming)
	v.SetDefault("logLevel", c.LogLevel)

	p := c.Priorities
	v.SetDefault("priorities.type.enum", p.Type.Enum)
	v.SetDefault("priorities.type.native", p.Type.Native)
	v.SetDefault("priorities.type.attribute", p.Type.Attribute)
	v.SetDefault("priorities.type.definition", p.Type.Definition)

	v.SetDefault("priorities.objectField.native", p.ObjectField.Native)
	v.SetDefault("priorities.objectField.declarative", p.ObjectField.Declarative)
	v.SetDefault("priorities.objectField.method", p.ObjectField.Method)
	v.SetDefault("priorities.objectField.property", p.ObjectField.Property)

	v.SetDefault("priorities.inputField.native", p.InputField.Native)
	v.SetDefault("priorities.inputField.declarative", p.InputField.Declarative)
	v.SetDefault("priorities.inputField.method", p.InputField.Method)
	v.SetDefault("priorities.inputField.property", p.InputField.Property)

	v.SetDefault("priorities.argument.config", p.Argument.Config)
	v.SetDefault("priorities.argument.declarative", p.Argument.Declarative)
	v.SetDefault("priorities.argument.parameter", p.Argument.Parameter)
}

// Load reads the configuration from the file at path, if path is not empty, and from the
// environment. Keys that are set nowhere keep their default.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if len(path) > 0 {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if _, err := c.NamingStrategy(); err != nil {
		return nil, err
	}
	return c, nil
}

// NamingStrategy returns the strategy selected by Naming.
func (c *Config) NamingStrategy() (field.NamingStrategy, error) {
	return field.NamingStrategyByName(c.Naming)
}

// Logger creates a production zap logger at LogLevel, or a no-op logger if LogLevel is empty.
func (c *Config) Logger() (*zap.Logger, error) {
	if len(c.LogLevel) == 0 {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.LogLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}
