package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/logger"
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration.
// Returns nil when the agent is disabled, which every consumer treats
// as "no instrumentation".
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		logger.Error("Failed to initialize New Relic", logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", appName))
	return app
}
