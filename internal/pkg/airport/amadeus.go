package airport

import (
	"context"
)

const AmadeusMockProviderName = "amadeus_mock"

// AmadeusMockProvider stands in for the Amadeus airport API with a single
// hardcoded record, matching the stubbed upstream contract.
type AmadeusMockProvider struct{}

func NewAmadeusMockProvider() *AmadeusMockProvider {
	return &AmadeusMockProvider{}
}

func (p *AmadeusMockProvider) Search(_ context.Context, _ string) ([]Airport, error) {
	return []Airport{
		{
			IATA:    "DEL",
			Name:    "Indira Gandhi International Airport",
			City:    "New Delhi",
			Country: "India",
		},
	}, nil
}
