package model

type DestinationID = int64

type Destination struct {
	ID       DestinationID `json:"id"`
	Name     string        `json:"name"`
	IATACode string        `json:"iata_code,omitempty"`
	Country  string        `json:"country"`

	// Attributes are the categories this destination satisfies.
	Attributes CategorySet `json:"attributes"`
}

// Routable reports whether the destination can be used in a flight search.
func (d Destination) Routable() bool {
	return d.IATACode != ""
}

type ScoredDestination struct {
	Destination Destination `json:"destination"`
	Score       int         `json:"score"`
}
