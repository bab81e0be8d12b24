package config

import (
	"os"
	"runtime"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/travigo/txc2gtfs/pkg/gtfs"
	"github.com/travigo/txc2gtfs/pkg/holidays"
	"gopkg.in/yaml.v3"
)

type AgencyConfig struct {
	URL      string `yaml:"url" validate:"omitempty,url"`
	Timezone string `yaml:"timezone" validate:"required,timezone"`
	Language string `yaml:"lang" validate:"omitempty,bcp47_language_tag"`
}

// NaPTANConfig points at a local NaPTAN file. The URL is only used by the naptan command.
type NaPTANConfig struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url" validate:"omitempty,url"`
}

// HolidaysConfig reads bank holidays from Path when it is set, otherwise from the gov.uk feed at URL
type HolidaysConfig struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url" validate:"required_without=Path,omitempty,url"`
}

type Config struct {
	Agency   AgencyConfig   `yaml:"agency"`
	NaPTAN   NaPTANConfig   `yaml:"naptan"`
	Holidays HolidaysConfig `yaml:"holidays"`

	Workers int    `yaml:"workers" validate:"gte=1"`
	Output  string `yaml:"output" validate:"required"`
	Strict  bool   `yaml:"strict"`
}

func Default() *Config {
	return &Config{
		Agency: AgencyConfig{
			Timezone: gtfs.DefaultTimezone,
			Language: "en",
		},
		Holidays: HolidaysConfig{URL: holidays.DefaultURL},
		Workers:  runtime.NumCPU(),
		Output:   "gtfs.zip",
	}
}

// Load reads a YAML config file over the defaults. Values missing from the file keep their default.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
