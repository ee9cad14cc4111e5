package api

import (
	"errors"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mcycle/internal/analytics"
	"github.com/terraincognita07/mcycle/internal/db"
	"github.com/terraincognita07/mcycle/internal/services"
	"gorm.io/gorm"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	secretKey    []byte
	tokenTTL     time.Duration
	repositories *db.Repositories
	authService  *services.AuthService
	cycleService *services.CycleService
	metricSvc    *services.MetricService
	logService   *services.DailyLogService
	insightsSvc  *services.InsightsService
	loginLimiter *attemptLimiter
	validate     *validator.Validate
	telemetry    *Telemetry
	logger       *logrus.Logger
	environment  string
	now          func() time.Time
}

type HandlerOptions struct {
	Logger      *logrus.Logger
	Telemetry   *Telemetry
	TokenTTL    time.Duration
	Environment string
}

func NewHandler(database *gorm.DB, secret string, options HandlerOptions) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		tokenTTL:     options.TokenTTL,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
		validate:     newValidator(),
		telemetry:    options.Telemetry,
		logger:       options.Logger,
		environment:  options.Environment,
		now:          time.Now,
	}
	if handler.tokenTTL <= 0 {
		handler.tokenTTL = defaultAuthTokenTTL
	}
	if handler.telemetry == nil {
		handler.telemetry = NewTelemetry()
	}
	if handler.environment == "" {
		handler.environment = "development"
	}
	if handler.logger == nil {
		handler.logger = logrus.New()
		handler.logger.SetOutput(io.Discard)
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.cycleService = services.NewCycleService(handler.repositories.Cycles)
	handler.metricSvc = services.NewMetricService(handler.repositories.Metrics)
	handler.logService = services.NewDailyLogService(handler.repositories.DailyLogs)
	handler.insightsSvc = services.NewInsightsService(
		handler.repositories.Cycles,
		handler.repositories.Metrics,
		handler.repositories.DailyLogs,
	)
	handler.insightsSvc.SetObserver(func(summary analytics.Summary) {
		handler.telemetry.ObserveSummary(summary)
	})
	return handler
}

func (handler *Handler) Telemetry() *Telemetry {
	return handler.telemetry
}
