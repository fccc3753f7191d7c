package endpoints

import "github.com/redpen-dev/redpen/internal/api"

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&CorrectEndpoint{},
	}
}
