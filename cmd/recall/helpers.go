package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/recall/internal/card"
	"github.com/at-ishikawa/recall/internal/config"
	"github.com/at-ishikawa/recall/internal/database"
	"github.com/at-ishikawa/recall/internal/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
	"github.com/at-ishikawa/recall/internal/study"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// app wires the configured database into the study service.
type app struct {
	cfg     *config.Config
	db      *sqlx.DB
	cards   *card.DBRepository
	logs    *history.DBRepository
	service *study.Service
	loc     *time.Location
}

func newApp(reg prometheus.Registerer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	boundary, err := cfg.Day.Boundary()
	if err != nil {
		return nil, fmt.Errorf("day boundary: %w", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	cards := card.NewDBRepository(db)
	logs := history.NewDBRepository(db)
	service := study.NewService(cards, logs, cfg, boundary, study.NewMetrics(reg))
	return &app{cfg: cfg, db: db, cards: cards, logs: logs, service: service, loc: boundary.Location}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		slog.Warn("failed to close the database", "error", err)
	}
}

type RatingFlag scheduling.Rating

// Set implements pflag.Value.
func (r *RatingFlag) Set(v string) error {
	rating, err := scheduling.ParseRating(v)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are %s or 1-4", v, ratingNames())
	}
	*r = RatingFlag(rating)
	return nil
}

// String implements pflag.Value.
func (r *RatingFlag) String() string {
	if r == nil || *r == 0 {
		return ""
	}
	return scheduling.Rating(*r).String()
}

// Type implements pflag.Value.
func (r *RatingFlag) Type() string {
	return "RatingFlag"
}

var (
	_ pflag.Value = (*RatingFlag)(nil)
)

func ratingNames() string {
	names := make([]string, 0, len(scheduling.Ratings))
	for _, r := range scheduling.Ratings {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}
