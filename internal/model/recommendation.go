package model

import "time"

// Recommendation is the composite answer for a room: the committed
// destination, the tally it was chosen from, best-effort flights and the
// remaining ranked candidates.
type Recommendation struct {
	RoomID          RoomID              `json:"room_id"`
	Destination     Destination         `json:"destination"`
	Score           int                 `json:"score"`
	CategoryMatches *CategoryTally      `json:"category_matches"`
	CommonQuestions []Question          `json:"common_yes_questions"`
	Flights         *FlightSearchResult `json:"flights,omitempty"`
	FlightsError    string              `json:"flights_error,omitempty"`
	Alternatives    []ScoredDestination `json:"other_recommendations"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (r *Recommendation) FlightsAvailable() bool {
	return r.FlightsError == "" && r.Flights.HasResults()
}
