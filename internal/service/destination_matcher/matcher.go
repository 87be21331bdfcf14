package destination_matcher

import (
	"errors"
	"sort"

	"github.com/meulencv/wenomadus/internal/model"
)

var ErrNoMatches = errors.New("no matching destinations found")

const DefaultLimit = 5

type Matcher struct {
	limit int
}

func New(limit int) *Matcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Matcher{limit: limit}
}

// Match scores every destination against the tally and returns the best
// ones, highest score first and ties by ascending name. Destinations scoring
// zero are dropped.
func (m *Matcher) Match(tally *model.CategoryTally, catalog []model.Destination) ([]model.ScoredDestination, error) {
	matches := make([]model.ScoredDestination, 0, len(catalog))
	for _, d := range catalog {
		score := Score(tally, d)
		if score <= 0 {
			continue
		}
		matches = append(matches, model.ScoredDestination{
			Destination: d,
			Score:       score,
		})
	}

	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Destination.Name < matches[j].Destination.Name
	})

	if len(matches) > m.limit {
		matches = matches[:m.limit]
	}
	return matches, nil
}

// Score sums the counts of every tallied category the destination satisfies.
func Score(tally *model.CategoryTally, d model.Destination) int {
	score := 0
	for _, c := range tally.Categories() {
		if d.Attributes.Has(c) {
			score += tally.Count(c)
		}
	}
	return score
}
