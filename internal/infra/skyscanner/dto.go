package infra_skyscanner

import (
	"time"

	"github.com/meulencv/wenomadus/internal/model"
)

type createRequest struct {
	Query query `json:"query"`
}

type query struct {
	Market       string     `json:"market"`
	Locale       string     `json:"locale"`
	Currency     string     `json:"currency"`
	QueryLegs    []queryLeg `json:"queryLegs"`
	Adults       int        `json:"adults"`
	ChildrenAges []int      `json:"childrenAges,omitempty"`
	CabinClass   string     `json:"cabinClass"`
}

type queryLeg struct {
	OriginPlaceID      placeRef `json:"originPlaceId"`
	DestinationPlaceID placeRef `json:"destinationPlaceId"`
	Date               date     `json:"date"`
}

type placeRef struct {
	IATA string `json:"iata"`
}

type date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func toDate(t time.Time) date {
	y, m, d := t.Date()
	return date{Year: y, Month: int(m), Day: d}
}

func toLeg(from, to string, when time.Time) queryLeg {
	return queryLeg{
		OriginPlaceID:      placeRef{IATA: from},
		DestinationPlaceID: placeRef{IATA: to},
		Date:               toDate(when),
	}
}

// toCreateRequest builds the create body. A return date adds a second leg
// flying back from the destination.
func (c *Client) toCreateRequest(req model.SearchRequest) createRequest {
	legs := []queryLeg{toLeg(req.Origin, req.Destination, req.Date)}
	if req.ReturnDate != nil {
		legs = append(legs, toLeg(req.Destination, req.Origin, *req.ReturnDate))
	}

	return createRequest{
		Query: query{
			Market:       c.cfg.Market,
			Locale:       c.cfg.Locale,
			Currency:     c.cfg.Currency,
			QueryLegs:    legs,
			Adults:       req.Adults,
			ChildrenAges: req.ChildrenAges,
			CabinClass:   c.cfg.CabinClass,
		},
	}
}
