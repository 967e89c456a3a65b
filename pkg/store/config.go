package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .stint config file or the
// STINT_PATH environment variable, defaulting to ~/.stint.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.stint.db")
	viper.SetConfigName(".stint") // .yaml is implicit
	viper.SetEnvPrefix("STINT")
	viper.AutomaticEnv()

	if override := os.Getenv("STINT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
