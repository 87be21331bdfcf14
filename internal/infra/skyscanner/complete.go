package infra_skyscanner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/meulencv/wenomadus/internal/model"
)

var errIncomplete = errors.New("search still incomplete")

// Complete creates a search and polls it until it completes or the poll
// budget runs out. Running out is not an error: the last snapshot is
// returned with RESULT_STATUS_INCOMPLETE.
func (c *Client) Complete(ctx context.Context, req model.SearchRequest) (*model.FlightSearchResult, error) {
	s, err := c.CompleteSession(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Result, nil
}

func (c *Client) CompleteSession(ctx context.Context, req model.SearchRequest) (s *Session, err error) {
	defer func() {
		state := StateFailed
		if s != nil {
			state = s.State
		}
		c.metrics.SearchFinished(string(state))
	}()

	s, err = c.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.Done() {
		return s, nil
	}

	maxPolls := c.cfg.MaxPolls
	if maxPolls <= 0 {
		s.State = StateExhausted
		return s, nil
	}

	interval := c.cfg.PollInterval
	if err := wait(ctx, interval); err != nil {
		s.State = StateFailed
		return nil, err
	}

	_, err = backoff.Retry(ctx, func() (*model.FlightSearchResult, error) {
		res, err := c.Poll(ctx, s)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if !res.Complete() {
			return res, errIncomplete
		}
		return res, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(interval)),
		backoff.WithMaxTries(uint(maxPolls)),
	)

	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, errIncomplete):
		s.State = StateExhausted
		c.logger.Info("flight search poll budget exhausted",
			slog.String("token", s.Token),
			slog.Int("polls", maxPolls))
		return s, nil
	default:
		s.State = StateFailed
		return nil, err
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
