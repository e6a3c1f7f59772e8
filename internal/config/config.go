package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/recall/internal/scheduling"
)

type Config struct {
	Database   DatabaseConfig        `mapstructure:"database"`
	Day        DayConfig             `mapstructure:"day"`
	Scheduling SchedulingConfig      `mapstructure:"scheduling"`
	Decks      map[string]DeckConfig `mapstructure:"decks" validate:"omitempty,dive"`
	Server     ServerConfig          `mapstructure:"server"`
	Import     ImportConfig          `mapstructure:"import"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// DayConfig decides when one study day ends and the next begins.
type DayConfig struct {
	Timezone  string `mapstructure:"timezone" validate:"required"`
	StartHour int    `mapstructure:"start_hour" validate:"gte=0,lte=23"`
}

// Boundary resolves the timezone into a scheduling.DayBoundary.
func (c DayConfig) Boundary() (scheduling.DayBoundary, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return scheduling.DayBoundary{}, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return scheduling.DayBoundary{Location: loc, StartHour: c.StartHour}, nil
}

// SchedulingConfig holds the scheduling parameters in the units people write
// in a config file: minutes for steps and plain ratios for factors.
type SchedulingConfig struct {
	LearningStepsMinutes    []float64 `mapstructure:"learning_steps_minutes"`
	RelearningStepsMinutes  []float64 `mapstructure:"relearning_steps_minutes"`
	GraduatingIntervalDays  int       `mapstructure:"graduating_interval_days"`
	EasyIntervalDays        int       `mapstructure:"easy_interval_days"`
	MaxIntervalDays         int       `mapstructure:"max_interval_days"`
	StartingEase            float64   `mapstructure:"starting_ease"`
	MinimumEase             float64   `mapstructure:"minimum_ease"`
	LapseEasePenalty        float64   `mapstructure:"lapse_ease_penalty"`
	LapseIntervalMultiplier float64   `mapstructure:"lapse_interval_multiplier"`
	HardIntervalMultiplier  float64   `mapstructure:"hard_interval_multiplier"`
	HardEasePenalty         float64   `mapstructure:"hard_ease_penalty"`
	EasyBonus               float64   `mapstructure:"easy_bonus"`
	EasyEaseBonus           float64   `mapstructure:"easy_ease_bonus"`
	LeechThreshold          int       `mapstructure:"leech_threshold"`
	LeechAction             string    `mapstructure:"leech_action"`
	Fuzz                    bool      `mapstructure:"fuzz"`
	FuzzFactor              float64   `mapstructure:"fuzz_factor"`
	FuzzMinIntervalDays     int       `mapstructure:"fuzz_min_interval_days"`
	NewPerDay               int       `mapstructure:"new_per_day"`
	ReviewPerDay            int       `mapstructure:"review_per_day"`
}

// DeckConfig overrides any subset of SchedulingConfig for one deck.
type DeckConfig struct {
	LearningStepsMinutes    []float64 `mapstructure:"learning_steps_minutes"`
	RelearningStepsMinutes  []float64 `mapstructure:"relearning_steps_minutes"`
	GraduatingIntervalDays  *int      `mapstructure:"graduating_interval_days"`
	EasyIntervalDays        *int      `mapstructure:"easy_interval_days"`
	MaxIntervalDays         *int      `mapstructure:"max_interval_days"`
	StartingEase            *float64  `mapstructure:"starting_ease"`
	MinimumEase             *float64  `mapstructure:"minimum_ease"`
	LapseEasePenalty        *float64  `mapstructure:"lapse_ease_penalty"`
	LapseIntervalMultiplier *float64  `mapstructure:"lapse_interval_multiplier"`
	HardIntervalMultiplier  *float64  `mapstructure:"hard_interval_multiplier"`
	HardEasePenalty         *float64  `mapstructure:"hard_ease_penalty"`
	EasyBonus               *float64  `mapstructure:"easy_bonus"`
	EasyEaseBonus           *float64  `mapstructure:"easy_ease_bonus"`
	LeechThreshold          *int      `mapstructure:"leech_threshold"`
	LeechAction             *string   `mapstructure:"leech_action"`
	Fuzz                    *bool     `mapstructure:"fuzz"`
	FuzzFactor              *float64  `mapstructure:"fuzz_factor"`
	FuzzMinIntervalDays     *int      `mapstructure:"fuzz_min_interval_days"`
	NewPerDay               *int      `mapstructure:"new_per_day"`
	ReviewPerDay            *int      `mapstructure:"review_per_day"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

type ImportConfig struct {
	RepoDirectory string         `mapstructure:"repo_directory" validate:"required"`
	Sources       []SourceConfig `mapstructure:"sources" validate:"omitempty,dive"`
}

// SourceConfig is a directory of markdown decks, either local or a git
// repository checked out under ImportConfig.RepoDirectory.
type SourceConfig struct {
	Name   string `mapstructure:"name" validate:"required"`
	URL    string `mapstructure:"url" validate:"required_without=Path"`
	Branch string `mapstructure:"branch"`
	Path   string `mapstructure:"path" validate:"omitempty,readable_dir"`
}

// Parameters converts the config units into scheduling.Parameters.
func (c SchedulingConfig) Parameters() scheduling.Parameters {
	return scheduling.Parameters{
		LearningSteps:           minutesToDurations(c.LearningStepsMinutes),
		RelearningSteps:         minutesToDurations(c.RelearningStepsMinutes),
		GraduatingIntervalDays:  c.GraduatingIntervalDays,
		EasyIntervalDays:        c.EasyIntervalDays,
		MaxIntervalDays:         c.MaxIntervalDays,
		StartingEase:            scheduling.FactorFromFloat(c.StartingEase),
		MinimumEase:             scheduling.FactorFromFloat(c.MinimumEase),
		LapseEasePenalty:        scheduling.FactorFromFloat(c.LapseEasePenalty),
		LapseIntervalMultiplier: scheduling.FactorFromFloat(c.LapseIntervalMultiplier),
		HardIntervalMultiplier:  scheduling.FactorFromFloat(c.HardIntervalMultiplier),
		HardEasePenalty:         scheduling.FactorFromFloat(c.HardEasePenalty),
		EasyBonus:               scheduling.FactorFromFloat(c.EasyBonus),
		EasyEaseBonus:           scheduling.FactorFromFloat(c.EasyEaseBonus),
		LeechThreshold:          c.LeechThreshold,
		LeechAction:             scheduling.LeechAction(c.LeechAction),
		Fuzz:                    c.Fuzz,
		FuzzFactor:              scheduling.FactorFromFloat(c.FuzzFactor),
		FuzzMinIntervalDays:     c.FuzzMinIntervalDays,
		NewPerDay:               c.NewPerDay,
		ReviewPerDay:            c.ReviewPerDay,
	}
}

func minutesToDurations(minutes []float64) []time.Duration {
	durations := make([]time.Duration, 0, len(minutes))
	for _, m := range minutes {
		durations = append(durations, time.Duration(m*float64(time.Minute)))
	}
	return durations
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// apply returns base with the fields set in d replaced.
func (d DeckConfig) apply(base SchedulingConfig) SchedulingConfig {
	if d.LearningStepsMinutes != nil {
		base.LearningStepsMinutes = d.LearningStepsMinutes
	}
	if d.RelearningStepsMinutes != nil {
		base.RelearningStepsMinutes = d.RelearningStepsMinutes
	}
	setIfPresent(&base.GraduatingIntervalDays, d.GraduatingIntervalDays)
	setIfPresent(&base.EasyIntervalDays, d.EasyIntervalDays)
	setIfPresent(&base.MaxIntervalDays, d.MaxIntervalDays)
	setIfPresent(&base.StartingEase, d.StartingEase)
	setIfPresent(&base.MinimumEase, d.MinimumEase)
	setIfPresent(&base.LapseEasePenalty, d.LapseEasePenalty)
	setIfPresent(&base.LapseIntervalMultiplier, d.LapseIntervalMultiplier)
	setIfPresent(&base.HardIntervalMultiplier, d.HardIntervalMultiplier)
	setIfPresent(&base.HardEasePenalty, d.HardEasePenalty)
	setIfPresent(&base.EasyBonus, d.EasyBonus)
	setIfPresent(&base.EasyEaseBonus, d.EasyEaseBonus)
	setIfPresent(&base.LeechThreshold, d.LeechThreshold)
	setIfPresent(&base.LeechAction, d.LeechAction)
	setIfPresent(&base.Fuzz, d.Fuzz)
	setIfPresent(&base.FuzzFactor, d.FuzzFactor)
	setIfPresent(&base.FuzzMinIntervalDays, d.FuzzMinIntervalDays)
	setIfPresent(&base.NewPerDay, d.NewPerDay)
	setIfPresent(&base.ReviewPerDay, d.ReviewPerDay)
	return base
}

// ParametersFor returns the scheduling parameters of deck: the defaults
// merged with the deck's overrides, if any. Deck names are matched
// case-insensitively because viper lower-cases map keys.
func (c *Config) ParametersFor(deck string) scheduling.Parameters {
	if d, ok := c.Decks[strings.ToLower(deck)]; ok {
		return d.apply(c.Scheduling).Parameters()
	}
	return c.Scheduling.Parameters()
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/recall")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load is a shorthand for NewConfigLoader(configFile).Load().
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "recall.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "recall")
	v.SetDefault("database.username", "user")

	v.SetDefault("day.timezone", "Local")
	v.SetDefault("day.start_hour", 4)

	p := scheduling.DefaultParameters()
	v.SetDefault("scheduling.learning_steps_minutes", []float64{1, 10})
	v.SetDefault("scheduling.relearning_steps_minutes", []float64{10})
	v.SetDefault("scheduling.graduating_interval_days", p.GraduatingIntervalDays)
	v.SetDefault("scheduling.easy_interval_days", p.EasyIntervalDays)
	v.SetDefault("scheduling.max_interval_days", p.MaxIntervalDays)
	v.SetDefault("scheduling.starting_ease", p.StartingEase.Float())
	v.SetDefault("scheduling.minimum_ease", p.MinimumEase.Float())
	v.SetDefault("scheduling.lapse_ease_penalty", p.LapseEasePenalty.Float())
	v.SetDefault("scheduling.lapse_interval_multiplier", p.LapseIntervalMultiplier.Float())
	v.SetDefault("scheduling.hard_interval_multiplier", p.HardIntervalMultiplier.Float())
	v.SetDefault("scheduling.hard_ease_penalty", p.HardEasePenalty.Float())
	v.SetDefault("scheduling.easy_bonus", p.EasyBonus.Float())
	v.SetDefault("scheduling.easy_ease_bonus", p.EasyEaseBonus.Float())
	v.SetDefault("scheduling.leech_threshold", p.LeechThreshold)
	v.SetDefault("scheduling.leech_action", string(p.LeechAction))
	v.SetDefault("scheduling.fuzz", p.Fuzz)
	v.SetDefault("scheduling.fuzz_factor", p.FuzzFactor.Float())
	v.SetDefault("scheduling.fuzz_min_interval_days", p.FuzzMinIntervalDays)
	v.SetDefault("scheduling.new_per_day", p.NewPerDay)
	v.SetDefault("scheduling.review_per_day", p.ReviewPerDay)

	v.SetDefault("server.port", 8080)
	v.SetDefault("import.repo_directory", "repos")
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper
	setDefaults(v)

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "RECALL_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind RECALL_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	if _, err := cfg.Day.Boundary(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Scheduling.Parameters().Validate(""); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for deck := range cfg.Decks {
		if err := cfg.ParametersFor(deck).Validate(deck); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	return &cfg, nil
}
