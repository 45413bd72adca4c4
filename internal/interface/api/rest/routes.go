package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteConnect    = RouteApiV1 + "/connect"
	RouteDisconnect = RouteApiV1 + "/disconnect"

	// users
	RouteUsers = RouteApiV1 + "/users"
	RouteMe    = RouteUsers + "/me"

	// files
	RouteFiles         = RouteApiV1 + "/files"
	RouteFile          = RouteFiles + "/:file_id"
	RouteFileData      = RouteFile + "/data"
	RouteFilePublish   = RouteFile + "/publish"
	RouteFileUnpublish = RouteFile + "/unpublish"

	// ops
	RouteStatus  = RouteApiV1 + "/status"
	RouteStats   = RouteApiV1 + "/stats"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
