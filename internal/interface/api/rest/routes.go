package rest

const (
	RouteUsers = "/users"
	RouteUser  = RouteUsers + "/:user_id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
