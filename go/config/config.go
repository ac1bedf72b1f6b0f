/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads strwrap settings from flags, environment variables
// and an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vitess.io/strwrap/go/strwrap"
)

// Keys understood by Load. Flags of the same name bind to them.
const (
	KeyConfigFile       = "config"
	KeyDisabledBackends = "backends.disabled"
	KeyExtraSingleByte  = "single-byte.extra"
	KeyListenAddr       = "serve.addr"

	envPrefix = "STRWRAP"
)

var flagKeys = map[string]string{
	KeyConfigFile:     KeyConfigFile,
	"disable-backend": KeyDisabledBackends,
	"single-byte":     KeyExtraSingleByte,
	"listen-addr":     KeyListenAddr,
}

// Config is the resolved configuration. It is not modified after Load.
type Config struct {
	DisabledBackends []string
	ExtraSingleByte  []string
	ListenAddr       string
	File             string
}

// RegisterFlags installs the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfigFile, "", "path to a yaml, json or toml config file")
	fs.StringSlice("disable-backend", nil, "report the named backend feature as unavailable (ianaindex, charmap); repeatable")
	fs.StringSlice("single-byte", nil, "additional encoding names to treat as single-byte; repeatable")
	fs.String("listen-addr", ":15999", "address the serve command listens on")
}

// Load resolves the configuration from fs, the environment and the config
// file named by --config.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyListenAddr, ":15999")

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	file := v.GetString(KeyConfigFile)
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return &Config{
		DisabledBackends: v.GetStringSlice(KeyDisabledBackends),
		ExtraSingleByte:  v.GetStringSlice(KeyExtraSingleByte),
		ListenAddr:       v.GetString(KeyListenAddr),
		File:             file,
	}, nil
}

// Features returns base with every disabled backend switched off. base is
// not modified.
func (c *Config) Features(base strwrap.Features) strwrap.Features {
	features := make(strwrap.Features, len(base))
	for name, ok := range base {
		features[name] = ok
	}
	for _, name := range c.DisabledBackends {
		features[strings.ToLower(strings.TrimSpace(name))] = false
	}
	return features
}

// SingleByteTable returns strwrap.DefaultSingleByte extended with the
// configured extra names.
func (c *Config) SingleByteTable() *strwrap.Table {
	if len(c.ExtraSingleByte) == 0 {
		return strwrap.DefaultSingleByte
	}
	return strwrap.DefaultSingleByte.Extend(c.ExtraSingleByte...)
}
