package infra_postgres_catalog

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/meulencv/wenomadus/internal/model"
)

type QuestionDB struct {
	ID       model.QuestionID `db:"id"`
	Text     string           `db:"text"`
	Category string           `db:"category"`
}

func (q *QuestionDB) ToDomain() model.Question {
	return model.Question{
		ID:       q.ID,
		Text:     q.Text,
		Category: model.Category(q.Category),
	}
}

type DestinationDB struct {
	ID         model.DestinationID `db:"id"`
	Name       string              `db:"name"`
	IATACode   sql.NullString      `db:"iata_code"`
	Country    string              `db:"country"`
	Attributes pq.StringArray      `db:"attributes"`
}

func (d *DestinationDB) ToDomain() model.Destination {
	categories := make([]model.Category, 0, len(d.Attributes))
	for _, a := range d.Attributes {
		categories = append(categories, model.Category(a))
	}
	return model.Destination{
		ID:         d.ID,
		Name:       d.Name,
		IATACode:   d.IATACode.String,
		Country:    d.Country,
		Attributes: model.NewCategorySet(categories...),
	}
}

func DestinationFromDomain(d model.Destination) DestinationDB {
	return DestinationDB{
		ID:         d.ID,
		Name:       d.Name,
		IATACode:   sql.NullString{String: d.IATACode, Valid: d.IATACode != ""},
		Country:    d.Country,
		Attributes: pq.StringArray(d.Attributes.Slice()),
	}
}
