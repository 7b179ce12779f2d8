package config

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	ReplayInterval        time.Duration
}

var once sync.Once
var config *SchedulerConfig

// LoadSchedulerConfig reads config.yaml from dir (or the file itself when
// path names one). A missing file is not an error: defaults and
// SCHEDULER_* environment variables still apply.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("replay.interval", "1s")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Debugf("no config file in %s, using defaults", path)
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		ReplayInterval:        v.GetDuration("replay.interval"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, errors.New("scheduler.round_robin.time_quantum must be a positive integer")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetSchedulerConfig loads ./config.yaml once and exits on a broken file.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			logrus.Fatalln(err)
		}
	})

	return config
}
