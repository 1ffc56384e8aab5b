package services

import (
	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/modules/advisory"
	"github.com/clearboard/clearboard-backend/internal/modules/scoring"
	"github.com/clearboard/clearboard-backend/internal/modules/trend"
	"github.com/clearboard/clearboard-backend/internal/utils"
)

// EngineConfig carries the tunables shared by the scoring, trend and
// advisory services. Loaded once at startup; services treat it as
// read-only after that.
type EngineConfig struct {
	Thresholds        scoring.Thresholds
	Policy            scoring.Policy
	DirectionDeadband float64
	ForecastWindow    int
	ExpirationDays    int
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Thresholds:        scoring.DefaultThresholds(),
		Policy:            scoring.PolicyWeighted,
		DirectionDeadband: trend.DefaultDirectionDeadband,
		ForecastWindow:    6,
		ExpirationDays:    advisory.DefaultExpirationDays,
	}
}

// EngineConfigFromEnv reads overrides from the environment, falling back
// to defaults on missing or unparsable values.
func EngineConfigFromEnv(log *logger.Logger) EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.Thresholds.GreenMin = utils.GetEnvAsFloat("SCORE_GREEN_MIN", cfg.Thresholds.GreenMin, log)
	cfg.Thresholds.YellowMin = utils.GetEnvAsFloat("SCORE_YELLOW_MIN", cfg.Thresholds.YellowMin, log)
	if err := cfg.Thresholds.Validate(); err != nil {
		log.Warn("Invalid score thresholds, using defaults", "error", err)
		cfg.Thresholds = scoring.DefaultThresholds()
	}
	if p, err := scoring.ParsePolicy(utils.GetEnv("SCORE_POLICY", cfg.Policy.String(), log)); err == nil {
		cfg.Policy = p
	} else {
		log.Warn("Invalid aggregation policy, using weighted", "error", err)
	}
	cfg.DirectionDeadband = utils.GetEnvAsFloat("TREND_DEADBAND", cfg.DirectionDeadband, log)
	cfg.ForecastWindow = utils.GetEnvAsInt("FORECAST_WINDOW", cfg.ForecastWindow, log)
	cfg.ExpirationDays = utils.GetEnvAsInt("SUGGESTION_EXPIRATION_DAYS", cfg.ExpirationDays, log)
	return cfg
}
