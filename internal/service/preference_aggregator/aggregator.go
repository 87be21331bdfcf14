package preference_aggregator

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/meulencv/wenomadus/internal/model"
)

var (
	ErrNoParticipants = errors.New("no participants found in room")
	ErrNoResponses    = errors.New("no responses found in room")
)

type Result struct {
	Tally           *model.CategoryTally
	CommonQuestions []model.Question
	// UnknownCategories lists categories of unanimous questions that no
	// destination can ever satisfy. It points at a catalog typo.
	UnknownCategories []model.Category
}

type Aggregator struct {
	logger *slog.Logger
}

type Option func(*Aggregator)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

func New(opts ...Option) *Aggregator {
	a := &Aggregator{logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate counts unanimous-yes questions per category.
//
// A question is unanimous only if every participant of the room answered it
// and every answer is true. A participant who never answered a question
// disqualifies it. Categories are reported in ascending question id order of
// their first qualifying question.
func (a *Aggregator) Aggregate(snapshot model.RoomSnapshot, questions []model.Question) (Result, error) {
	if len(snapshot.Participants) == 0 {
		return Result{}, ErrNoParticipants
	}

	answered := make(map[model.QuestionID]struct{})
	for _, p := range snapshot.Participants {
		for qID := range p.Answers {
			answered[qID] = struct{}{}
		}
	}
	if len(answered) == 0 {
		return Result{}, ErrNoResponses
	}

	catalog := make(map[model.QuestionID]model.Question, len(questions))
	for _, q := range questions {
		catalog[q.ID] = q
	}

	ids := make([]model.QuestionID, 0, len(answered))
	for qID := range answered {
		ids = append(ids, qID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	res := Result{Tally: model.NewCategoryTally()}
	unknown := make(map[model.Category]struct{})
	for _, qID := range ids {
		if !unanimousYes(qID, snapshot.Participants) {
			continue
		}
		q, ok := catalog[qID]
		if !ok {
			a.logger.Warn("unanimous answer for a question missing from the catalog",
				slog.Int64("question_id", qID),
				slog.String("room_id", snapshot.Room.ID.String()))
			continue
		}
		if !q.Category.Known() {
			if _, seen := unknown[q.Category]; !seen {
				unknown[q.Category] = struct{}{}
				res.UnknownCategories = append(res.UnknownCategories, q.Category)
				a.logger.Warn("question uses an unrecognized category",
					slog.Int64("question_id", qID),
					slog.String("category", string(q.Category)))
			}
		}
		res.Tally.Add(q.Category)
		res.CommonQuestions = append(res.CommonQuestions, q)
	}

	return res, nil
}

func unanimousYes(qID model.QuestionID, participants []model.ParticipantAnswers) bool {
	for _, p := range participants {
		answer, ok := p.Answers[qID]
		if !ok || !answer {
			return false
		}
	}
	return true
}
