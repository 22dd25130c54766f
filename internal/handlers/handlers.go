package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
)

// Universities lists the registry entries the API serves.
type Universities interface {
	University(key string) (models.University, bool)
	Keys() []string
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Roster         logic.RosterService
	Registry       Universities
	Cache          Pinger
	AllowedOrigins []string
	Logger         *zap.Logger
}

type Handler struct {
	roster         logic.RosterService
	registry       Universities
	cache          Pinger
	allowedOrigins []string
	logger         *zap.SugaredLogger
	validator      *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		roster:         cfg.Roster,
		registry:       cfg.Registry,
		cache:          cfg.Cache,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
	}
}
