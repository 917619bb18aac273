package zap

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment selects the baseline zap profile a logger starts from.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentUAT         Environment = "uat"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

func (e Environment) known() bool {
	switch e {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentUAT, EnvironmentDevelopment, EnvironmentLocal:
		return true
	}

	return false
}

// developmentLike environments default to debug verbosity and the
// development zap profile.
func (e Environment) developmentLike() bool {
	return e == EnvironmentDevelopment || e == EnvironmentLocal
}

// Config carries the logger initialization inputs.
//
// ServiceName is stamped on every entry as the "service" field so entries
// from different Plasma Engine services can be told apart in aggregation.
// Level overrides the environment's default verbosity when set.
// OTelLibraryName names the OTel log bridge scope and falls back to
// ServiceName when empty.
type Config struct {
	Environment     Environment
	ServiceName     string
	Level           string
	OTelLibraryName string
}

func (c Config) validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return errors.New("ServiceName is required")
	}

	if !c.Environment.known() {
		return fmt.Errorf("invalid environment %q", c.Environment)
	}

	return nil
}

func (c Config) bridgeScopeName() string {
	if strings.TrimSpace(c.OTelLibraryName) == "" {
		return c.ServiceName
	}

	return c.OTelLibraryName
}

// New builds the service logger for the given environment profile and
// returns it together with the handle that retunes its level at runtime.
// Every entry is teed into the OpenTelemetry log bridge alongside the
// regular output.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap config: %w", err)
	}

	level, err := startingLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	zcfg := profileFor(cfg.Environment)
	zcfg.Level = level
	zcfg.DisableStacktrace = true
	zcfg.InitialFields = map[string]any{"service": cfg.ServiceName}

	built, err := zcfg.Build(
		zap.AddCallerSkip(1), // report the caller of the wrapper, not the wrapper
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.bridgeScopeName()))
		}),
	)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, level, nil
}

// startingLevel picks the logger's starting level. An explicit Config.Level
// wins; otherwise development-like environments get debug and everything
// else gets info.
func startingLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if cfg.Environment.developmentLike() {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

// profileFor returns the zap profile for the environment.
// Both profiles keep JSON encoding; they differ in sampling and defaults.
func profileFor(environment Environment) zap.Config {
	cfg := zap.NewProductionConfig()
	if environment.developmentLike() {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
