package config

import (
	"bytes"
	"errors"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FORMGUARD_LOG_LEVEL for log.level.
const EnvPrefix = "FORMGUARD"

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension. When
// defaults is not nil it is read first as YAML and the file is merged on top.
func NewViper(pathFile string, defaults []byte) (*Viper, error) {
	v := newViper()

	if defaults != nil {
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
			return nil, err
		}
	}

	v.SetConfigFile(pathFile)
	v.SetConfigType(strings.TrimPrefix(path.Ext(pathFile), "."))

	if err := v.MergeInConfig(); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

// NewViperFromBytes loads configuration from memory and returns a Viper-backed Config.
// configType should be a format supported by Viper (e.g. "yaml", "json", "toml").
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := newViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	return vc.v.GetInt(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetArray returns the value for key as a list, splitting plain strings by commas.
func (vc *Viper) GetArray(key string) []string {
	raw, ok := vc.v.Get(key).(string)
	if !ok {
		return vc.v.GetStringSlice(key)
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// No resources to close for Viper; this is just for interface completeness.
	return nil
}
