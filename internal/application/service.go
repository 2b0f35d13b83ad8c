// Package application composes the ERCx API with local state.
package application

import (
	"github.com/ercx-tools/ercx-cli/internal/ports"
)

type Service struct {
	api     ports.API
	journal ports.ListJournal
	clock   ports.Clock
}

func NewService(api ports.API, journal ports.ListJournal, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		api:     api,
		journal: journal,
		clock:   clock,
	}
}
