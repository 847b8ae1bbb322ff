// Package config loads and validates the exhibit tool's YAML settings.
//
// A minimal file only names the dataset:
//
//	dataset: data/MetObjects.csv
//
// Everything else is optional:
//
//	metric: date           # date | creator | origin (or a menu alias)
//	max_cost: 50           # defaults to similarity.DefaultThreshold(metric)
//	anchors: [29.100.5, 17.190.1]
//	weights: true          # print edge weights in the DOT output
//	mst: prim              # prim | kruskal
//	log:
//	  level: info          # debug | info | warn | error
//	  format: console      # json | console
//
// Fields left empty are asked for interactively or taken from flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/exhibit/similarity"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Dataset string    `yaml:"dataset" validate:"required"`
	Metric  string    `yaml:"metric,omitempty" validate:"omitempty,metric"`
	MaxCost *float64  `yaml:"max_cost,omitempty" validate:"omitempty,gte=0"`
	Anchors []string  `yaml:"anchors,omitempty" validate:"dive,required"`
	Weights bool      `yaml:"weights,omitempty"`
	MST     string    `yaml:"mst,omitempty" validate:"omitempty,oneof=prim kruskal"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("metric", func(fl validator.FieldLevel) bool {
		_, err := similarity.ParseKind(fl.Field().String())
		return err == nil
	})

	return v
}

// Default returns a Config with logging defaults and nothing else set.
func Default() *Config {
	return &Config{Log: LogConfig{Level: "info", Format: "console"}}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document from r over Default and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadFile is Load without validation, for callers that overlay further
// settings before calling Validate.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads a YAML document from r over Default without validating it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "metric":
		return fmt.Sprintf("%s %q is not a known metric (date, creator, origin)", field, fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Kind resolves Metric. ok is false when no metric is configured.
func (c *Config) Kind() (k similarity.Kind, ok bool, err error) {
	if c.Metric == "" {
		return 0, false, nil
	}
	k, err = similarity.ParseKind(c.Metric)
	if err != nil {
		return 0, false, err
	}

	return k, true, nil
}

// Threshold returns MaxCost when set, otherwise the default for k.
func (c *Config) Threshold(k similarity.Kind) float64 {
	if c.MaxCost != nil {
		return *c.MaxCost
	}

	return similarity.DefaultThreshold(k)
}

// Logger builds a zap logger: production (JSON) or development (console)
// encoding at the configured level.
func (l LogConfig) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}

	var zc zap.Config
	if l.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
