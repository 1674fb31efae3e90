package netreactor

import (
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"log"
	"strings"
)

type Global struct {
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

type PollingConfig struct {
	Name         string  `yaml:"name" toml:"name"`
	IntervalSec  float64 `yaml:"poll_interval_sec" toml:"poll_interval_sec"`
	Immediate    bool    `yaml:"immediate" toml:"immediate"`
	LockOsThread bool    `yaml:"lock_os_thread" toml:"lock_os_thread"`
	MaxOpenFiles uint64  `yaml:"max_open_files" toml:"max_open_files"`
}

type EventsConfig struct {
	KafkaBrokers string `yaml:"kafka_brokers" toml:"kafka_brokers"`
	KafkaTopic   string `yaml:"kafka_topic" toml:"kafka_topic"`
}

type Config struct {
	Global  Global        `yaml:"global" toml:"global"`
	Reactor PollingConfig `yaml:"reactor" toml:"reactor"`
	Events  EventsConfig  `yaml:"events" toml:"events"`
}

// Interval maps the file-level cadence settings onto the reactor interval.
// Immediate wins over any configured seconds value.
func (pc PollingConfig) Interval() Interval {
	if pc.Immediate {
		return Immediate()
	}
	return Seconds(pc.IntervalSec)
}

func LoadConfig(filePath string) *Config {
	file, err := ioutil.ReadFile(filePath)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	config := &Config{}
	if strings.HasSuffix(filePath, ".toml") {
		err = toml.Unmarshal(file, config)
	} else if strings.HasSuffix(filePath, ".yaml") {
		err = yaml.Unmarshal(file, config)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
	validateConfig(config)
	return config
}

func validateConfig(config *Config) {
	if config.Reactor.Name == "" {
		config.Reactor.Name = "MainReactor"
	}
	if !config.Reactor.Immediate && config.Reactor.IntervalSec <= 0 {
		config.Reactor.IntervalSec = 0.1
	}
}
