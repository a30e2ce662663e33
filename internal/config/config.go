package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"bigtwo/internal/bot"
)

// BetTier is a named table stake.
type BetTier struct {
	ID      string `mapstructure:"id"`
	BaseBet int64  `mapstructure:"base_bet"`
}

// Config is the full runtime configuration. Every field has a working
// default; a config file only overrides.
type Config struct {
	Table struct {
		BaseBet      int64     `mapstructure:"base_bet"`
		ThinkDelayMS int       `mapstructure:"think_delay_ms"`
		Nightmare    bool      `mapstructure:"nightmare"`
		DefaultTier  string    `mapstructure:"default_tier"`
		Tiers        []BetTier `mapstructure:"tiers"`
	} `mapstructure:"table"`
	AI struct {
		CandidateCap         int     `mapstructure:"candidate_cap"`
		RolloutsPerCard      int     `mapstructure:"rollouts_per_card"`
		RolloutCap           int     `mapstructure:"rollout_cap"`
		NightmareScoreWeight float64 `mapstructure:"nightmare_score_weight"`
		AllyWinUtility       float64 `mapstructure:"ally_win_utility"`
	} `mapstructure:"ai"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Load reads configuration from path. An empty path, or a missing file
// at the given path, yields pure defaults.
func Load(path string) (Config, error) {
	v := viper.New()

	d := bot.DefaultTuning
	v.SetDefault("table.base_bet", 100)
	v.SetDefault("table.think_delay_ms", 600)
	v.SetDefault("table.nightmare", false)
	v.SetDefault("table.default_tier", "")
	v.SetDefault("ai.candidate_cap", d.CandidateCap)
	v.SetDefault("ai.rollouts_per_card", d.RolloutsPerCard)
	v.SetDefault("ai.rollout_cap", d.RolloutCap)
	v.SetDefault("ai.nightmare_score_weight", d.NightmareScoreWeight)
	v.SetDefault("ai.ally_win_utility", d.AllyWinUtility)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Tuning maps the AI section onto the strategy knobs, leaving
// unconfigured knobs at their defaults.
func (c Config) Tuning() bot.Tuning {
	t := bot.DefaultTuning
	t.CandidateCap = c.AI.CandidateCap
	t.RolloutsPerCard = c.AI.RolloutsPerCard
	t.RolloutCap = c.AI.RolloutCap
	t.NightmareScoreWeight = c.AI.NightmareScoreWeight
	t.AllyWinUtility = c.AI.AllyWinUtility
	return t
}

// BaseBetFor resolves a tier ID into its stake, falling back to the
// default tier and finally the flat table stake.
func (c Config) BaseBetFor(tierID string) int64 {
	target := tierID
	if target == "" {
		target = c.Table.DefaultTier
	}
	for _, tier := range c.Table.Tiers {
		if tier.ID == target {
			return tier.BaseBet
		}
	}
	for _, tier := range c.Table.Tiers {
		if tier.ID == c.Table.DefaultTier {
			return tier.BaseBet
		}
	}
	return c.Table.BaseBet
}
