package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, accounts *AccountHandler, batches *BatchHandler, groups *GroupHandler, metadata *MetadataHandler) {
	server.POST("/api/v1/accounts/provision", accounts.Provision)
	server.POST("/api/v1/accounts/revoke", accounts.Revoke)
	server.GET("/api/v1/accounts", accounts.Show)
	server.GET("/api/v1/accounts/batch", batches.FetchBatch)
	server.POST("/api/v1/directory/snapshots", batches.Snapshot)
	server.GET("/api/v1/groups", groups.ListAvailable)
	server.GET("/api/v1/metadata", metadata.Describe)
}
