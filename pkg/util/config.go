package util

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/lintang-b-s/unitpath/pkg"
)

// RulesetConfig carries the search knobs the game rules leave open. It is
// read from a config file so scenario parity can be pinned without a
// rebuild.
type RulesetConfig struct {
	// TurnChangeOrder: "fuel_then_health" (reference behavior) or
	// "health_then_fuel".
	TurnChangeOrder string `mapstructure:"turn_change_order" validate:"oneof=fuel_then_health health_then_fuel"`

	// HeapArity is the d of the frontier d-ary heap.
	HeapArity int `mapstructure:"heap_arity" validate:"gte=2,lte=8"`

	// PathCacheSize bounds the per-destination found-path cache.
	PathCacheSize int `mapstructure:"path_cache_size" validate:"gt=0"`

	// PlannerWorkers sizes the batch planner's worker pool.
	PlannerWorkers int `mapstructure:"planner_workers" validate:"gte=1"`
}

// ReadConfig loads config.yaml from configPath, filling defaults for absent
// keys and validating the result.
func ReadConfig(configPath string) (*RulesetConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(configPath)

	v.SetDefault("turn_change_order", "fuel_then_health")
	v.SetDefault("heap_arity", 4)
	v.SetDefault("path_cache_size", 128)
	v.SetDefault("planner_workers", 4)

	if err := v.ReadInConfig(); err != nil {
		return nil, WrapErrorf(err, ErrInvalidConfig, "fatal error config file")
	}

	var cfg RulesetConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrInvalidConfig, "unmarshal ruleset config")
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrInvalidConfig, "validate ruleset config")
	}
	return &cfg, nil
}

// TurnOrder maps the config string onto the engine enum.
func (c *RulesetConfig) TurnOrder() pkg.TurnChangeOrder {
	if c.TurnChangeOrder == "health_then_fuel" {
		return pkg.HEALTH_THEN_FUEL
	}
	return pkg.FUEL_THEN_HEALTH
}
