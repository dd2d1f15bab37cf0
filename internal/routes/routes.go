package routes

const (
	Health  = "/health"
	Metrics = "/metrics"

	Root         = "/"
	PolicyList   = "/view"
	PolicyAdd    = "/add"
	PolicyUpdate = "/update/{id:[0-9]+}"
	PolicyDelete = "/delete/{id:[0-9]+}"
)
