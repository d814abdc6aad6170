package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	app "github.com/cermati/iamx-redash/internal/application/account"
	domain "github.com/cermati/iamx-redash/internal/domain/account"
	httpecho "github.com/cermati/iamx-redash/internal/interfaces/http/echo"
)

func NewHTTPServer(directory domain.Directory, audit domain.AuditRecorder, snapshots domain.SnapshotStore, groupCfg app.GroupCatalogConfig) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("1M"))

	provision := app.NewProvisionAccount(directory, audit)
	revoke := app.NewRevokeAccount(directory, audit)
	show := app.NewShowAccounts(directory)
	fetchBatch := app.NewFetchAccountBatch(directory)
	snapshot := app.NewSnapshotDirectory(fetchBatch, snapshots)
	listGroups := app.NewListAvailableGroups(directory, groupCfg)

	accountHandler := httpecho.NewAccountHandler(provision, revoke, show)
	batchHandler := httpecho.NewBatchHandler(fetchBatch, snapshot)
	groupHandler := httpecho.NewGroupHandler(listGroups)
	metadataHandler := httpecho.NewMetadataHandler()

	httpecho.RegisterRoutes(server, accountHandler, batchHandler, groupHandler, metadataHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
