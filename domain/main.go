package domain

import (
	"github.com/sarthi-app/sarthi-api/config"
	"github.com/sarthi-app/sarthi-api/domain/monitoring"
	"github.com/sarthi-app/sarthi-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger))
}
