package datetimepicker

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-datetimepicker/internal/format"
	"gopkg.in/yaml.v3"
	"io"
)

// ErrInvalidBound indicates a configured value or bound that does not contain a valid YYYY-MM-DD date
var ErrInvalidBound = errors.New("date must be written as YYYY-MM-DD with an optional HH:MM")

// Config is the file form of [Options]. Dates are written the way a user would type them, e.g. "2024-01-31 09:00".
// Unset booleans keep the value from [DefaultOptions].
type Config struct {
	Value   string `yaml:"value"`
	MinDate string `yaml:"minDate"`
	MaxDate string `yaml:"maxDate"`

	Format     string `yaml:"format"`
	TimeFormat string `yaml:"timeFormat"`

	ShowTimeSelect *bool `yaml:"showTimeSelect"`
	CloseOnSelect  *bool `yaml:"closeOnSelect"`
	Clearable      *bool `yaml:"clearable"`
	Disabled       bool  `yaml:"disabled"`

	Interval int `yaml:"interval"`
}

// LoadConfig decodes a YAML configuration. Unknown keys are rejected; an empty document is an empty configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var config Config
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	return &config, nil
}

// Options converts the configuration into picker options, starting from [DefaultOptions].
func (c *Config) Options() (Options, error) {
	opts := DefaultOptions()

	var err error
	if opts.Value, err = parseConfigDate("value", c.Value); err != nil {
		return Options{}, err
	}
	if opts.MinDate, err = parseConfigDate("minDate", c.MinDate); err != nil {
		return Options{}, err
	}
	if opts.MaxDate, err = parseConfigDate("maxDate", c.MaxDate); err != nil {
		return Options{}, err
	}

	if c.Format != "" {
		opts.Format = c.Format
	}

	var timeFormat format.TimeFormat
	if err := timeFormat.UnmarshalText([]byte(c.TimeFormat)); err != nil {
		return Options{}, fmt.Errorf("could not use timeFormat: %w", err)
	}
	opts.TimeFormat = timeFormat

	if c.ShowTimeSelect != nil {
		opts.ShowTimeSelect = *c.ShowTimeSelect
	}
	if c.CloseOnSelect != nil {
		opts.CloseOnSelect = *c.CloseOnSelect
	}
	if c.Clearable != nil {
		opts.Clearable = *c.Clearable
	}
	opts.Disabled = c.Disabled

	if c.Interval > 0 {
		opts.Interval = c.Interval
	}

	return opts, nil
}

func parseConfigDate(key, text string) (*DateTime, error) {
	if text == "" {
		return nil, nil
	}

	v, ok := ParseDateTime(text)
	if !ok {
		return nil, fmt.Errorf("could not parse %s %q: %w", key, text, ErrInvalidBound)
	}

	return v, nil
}
