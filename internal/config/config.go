package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env-default:"9091"`
	Storage    Storage `yaml:"storage"`
}

// Storage selects the backend the game registry lives in.
type Storage struct {
	Kind   string `yaml:"kind" env-default:"memory"`
	Redis  Redis  `yaml:"redis"`
	SQLite SQLite `yaml:"sqlite"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type SQLite struct {
	Path string `yaml:"path" env-default:"gridduel.db"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
