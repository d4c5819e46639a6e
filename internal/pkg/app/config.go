package app

import (
	"os"

	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type LoggingConfig struct {
	Level int `konf:"level"`
}

type StorageConfig struct {
	UsersFile   string `konf:"users_file"`
	CarsFile    string `konf:"cars_file"`
	RentalsFile string `konf:"rentals_file"`
}

type LimitsConfig struct {
	Users   int `konf:"users"`
	Cars    int `konf:"cars"`
	Rentals int `konf:"rentals"`
}

type AuthConfig struct {
	AdminKey         string `konf:"admin_key"`
	CredentialLength int    `konf:"credential_length"`
}

type Config struct {
	Logging LoggingConfig `konf:"logging"`
	Storage StorageConfig `konf:"storage"`
	Limits  LimitsConfig  `konf:"limits"`
	Auth    AuthConfig    `konf:"auth"`
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: 0},
		Storage: StorageConfig{
			UsersFile:   "users.txt",
			CarsFile:    "cars.txt",
			RentalsFile: "rentals.txt",
		},
		Limits: LimitsConfig{Users: 100, Cars: 100, Rentals: 100},
		Auth:   AuthConfig{AdminKey: "admin123", CredentialLength: 29},
	}
}

// ReadLocalConfig loads configuration from a local YAML file. A missing
// file is not an error, the defaults apply as is.
func ReadLocalConfig(path string) (Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	loader := konf.New()
	if err := loader.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal))); err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	if err := loader.Unmarshal("", &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}
