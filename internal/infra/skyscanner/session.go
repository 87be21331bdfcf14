package infra_skyscanner

import (
	"strings"

	"github.com/meulencv/wenomadus/internal/model"
)

type State string

const (
	StateCreated   State = "created"
	StatePolling   State = "polling"
	StateComplete  State = "complete"
	StateExhausted State = "exhausted"
	StateFailed    State = "failed"
)

// Session tracks one remote search job.
//
// Token is what polls are keyed by. It starts as RawToken without the
// configured suffix and switches to the suffixed form once a poll only
// succeeds that way.
type Session struct {
	Token    string
	RawToken string
	State    State
	Result   *model.FlightSearchResult
}

func newSession(rawToken, suffix string, first *model.FlightSearchResult) *Session {
	token := rawToken
	if suffix != "" {
		token = strings.TrimSuffix(rawToken, suffix)
	}

	s := &Session{
		Token:    token,
		RawToken: rawToken,
		State:    StateCreated,
		Result:   first,
	}
	if first.Complete() {
		s.State = StateComplete
	}
	return s
}

func (s *Session) Done() bool {
	switch s.State {
	case StateComplete, StateExhausted, StateFailed:
		return true
	}
	return false
}
