package model

import (
	"encoding/json"
	"math"
	"sort"
	"time"
)

type SearchStatus string

const (
	SearchStatusComplete   SearchStatus = "RESULT_STATUS_COMPLETE"
	SearchStatusIncomplete SearchStatus = "RESULT_STATUS_INCOMPLETE"
)

// SearchRequest describes one live flight search.
// ReturnDate turns it into a round trip.
type SearchRequest struct {
	Origin       string
	Destination  string
	Date         time.Time
	ReturnDate   *time.Time
	Adults       int
	ChildrenAges []int
}

type FlightSearchResult struct {
	Status       SearchStatus  `json:"status"`
	SessionToken string        `json:"sessionToken,omitempty"`
	Content      SearchContent `json:"content"`
}

type SearchContent struct {
	Results SearchResults `json:"results"`
	Stats   SearchStats   `json:"stats"`
}

type SearchResults struct {
	Itineraries map[string]Itinerary `json:"itineraries,omitempty"`
	Legs        map[string]Leg       `json:"legs,omitempty"`
	Segments    map[string]Segment   `json:"segments,omitempty"`
	Places      map[string]Place     `json:"places,omitempty"`
	Carriers    map[string]Carrier   `json:"carriers,omitempty"`
	Agents      map[string]Agent     `json:"agents,omitempty"`
}

type SearchStats struct {
	MinPrice       json.Number `json:"minPrice,omitempty"`
	MaxPrice       json.Number `json:"maxPrice,omitempty"`
	ItineraryCount int         `json:"itineraryCount"`
}

type Itinerary struct {
	LegIDs         []string        `json:"legIds"`
	PricingOptions []PricingOption `json:"pricingOptions"`
}

type PricingOption struct {
	ID       string   `json:"id,omitempty"`
	Price    Price    `json:"price"`
	AgentIDs []string `json:"agentIds,omitempty"`
}

type Price struct {
	Amount json.Number `json:"amount"`
	Unit   string      `json:"unit,omitempty"`
}

// Value returns the amount, or +Inf when it is missing or malformed.
func (p Price) Value() float64 {
	v, err := p.Amount.Float64()
	if err != nil {
		return math.Inf(1)
	}
	return v
}

type DateTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second,omitempty"`
}

type Leg struct {
	OriginPlaceID       string   `json:"originPlaceId"`
	DestinationPlaceID  string   `json:"destinationPlaceId"`
	DepartureDateTime   DateTime `json:"departureDateTime"`
	ArrivalDateTime     DateTime `json:"arrivalDateTime"`
	DurationInMinutes   int      `json:"durationInMinutes"`
	StopCount           int      `json:"stopCount"`
	SegmentIDs          []string `json:"segmentIds,omitempty"`
	MarketingCarrierIDs []string `json:"marketingCarrierIds,omitempty"`
}

type Segment struct {
	OriginPlaceID         string   `json:"originPlaceId"`
	DestinationPlaceID    string   `json:"destinationPlaceId"`
	DepartureDateTime     DateTime `json:"departureDateTime"`
	ArrivalDateTime       DateTime `json:"arrivalDateTime"`
	DurationInMinutes     int      `json:"durationInMinutes"`
	MarketingFlightNumber string   `json:"marketingFlightNumber,omitempty"`
	MarketingCarrierID    string   `json:"marketingCarrierId,omitempty"`
}

type Place struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	IATA     string `json:"iata,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}

type Carrier struct {
	Name string `json:"name"`
	IATA string `json:"iata,omitempty"`
}

type Agent struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (r *FlightSearchResult) Complete() bool {
	return r != nil && r.Status == SearchStatusComplete
}

// HasResults is false for a partial snapshot that carries no itineraries yet.
func (r *FlightSearchResult) HasResults() bool {
	return r != nil && len(r.Content.Results.Itineraries) > 0
}

type ItinerarySummary struct {
	ID       string   `json:"id"`
	Price    float64  `json:"price"`
	Unit     string   `json:"unit"`
	AgentIDs []string `json:"agent_ids,omitempty"`
	Legs     []Leg    `json:"legs"`
}

// CheapestItineraries returns up to n priced itineraries, cheapest first.
// Ties are ordered by itinerary id.
func (r *FlightSearchResult) CheapestItineraries(n int) []ItinerarySummary {
	if !r.HasResults() || n <= 0 {
		return nil
	}

	summaries := make([]ItinerarySummary, 0, len(r.Content.Results.Itineraries))
	for id, itin := range r.Content.Results.Itineraries {
		if len(itin.PricingOptions) == 0 {
			continue
		}
		cheapest := itin.PricingOptions[0]
		for _, po := range itin.PricingOptions[1:] {
			if po.Price.Value() < cheapest.Price.Value() {
				cheapest = po
			}
		}
		unit := cheapest.Price.Unit
		if unit == "" {
			unit = "EUR"
		}
		legs := make([]Leg, 0, len(itin.LegIDs))
		for _, legID := range itin.LegIDs {
			if leg, ok := r.Content.Results.Legs[legID]; ok {
				legs = append(legs, leg)
			}
		}
		summaries = append(summaries, ItinerarySummary{
			ID:       id,
			Price:    cheapest.Price.Value(),
			Unit:     unit,
			AgentIDs: cheapest.AgentIDs,
			Legs:     legs,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Price != summaries[j].Price {
			return summaries[i].Price < summaries[j].Price
		}
		return summaries[i].ID < summaries[j].ID
	})
	if len(summaries) > n {
		summaries = summaries[:n]
	}
	return summaries
}
