package config

import (
	"strings"

	"priority-scheduler/internal/requests"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DefaultPort     = 9095
	DefaultLogLevel = "info"
)

type SchedulerConfig struct {
	Port     int            `mapstructure:"port"`
	LogLevel string         `mapstructure:"log_level"`
	Jobs     []requests.Job `mapstructure:"jobs"`
}

// Load reads the config file at path, or config.yaml from the working
// directory when path is empty. A missing file yields the defaults.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetEnvPrefix("SCHEDULER")
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
			return nil, errors.Wrap(err, "read scheduler config")
		}
	}

	cfg := &SchedulerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode scheduler config")
	}
	if len(cfg.Jobs) == 0 {
		cfg.Jobs = requests.DemoRequest().Jobs
	}
	if err := cfg.Request().Validate(); err != nil {
		return nil, errors.Wrap(err, "scheduler config jobs")
	}
	return cfg, nil
}

func (c *SchedulerConfig) Request() requests.ScheduleRequests {
	return requests.ScheduleRequests{Jobs: c.Jobs}
}
