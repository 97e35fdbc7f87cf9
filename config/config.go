package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	GrpcPort              int
	RoundRobinTimeQuantum int
	MetricsEnabled        bool
	Verbose               bool
}

// LoadSchedulerConfig reads the YAML config at path. With an empty path it
// looks for config.yaml in the working directory and falls back to defaults
// when there is none. SCHEDULER_* environment variables override file values,
// e.g. SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("grpc_port", 0)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("log.verbose", false)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		GrpcPort:              v.GetInt("grpc_port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MetricsEnabled:        v.GetBool("metrics.enabled"),
		Verbose:               v.GetBool("log.verbose"),
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", config.RoundRobinTimeQuantum)
	}
	return config, nil
}
