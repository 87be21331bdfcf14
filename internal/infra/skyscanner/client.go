package infra_skyscanner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/meulencv/wenomadus/internal/config"
	infra_metrics "github.com/meulencv/wenomadus/internal/infra/metrics"
	"github.com/meulencv/wenomadus/internal/model"
)

var (
	ErrTransport       = errors.New("flight search transport error")
	ErrSessionNotFound = errors.New("flight search session not found")
	ErrInvalidRequest  = errors.New("invalid flight search request")
)

const sessionTokenHeader = "x-session-token"

type Client struct {
	cfg     config.Flights
	http    *http.Client
	metrics *infra_metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithMetrics(m *infra_metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg config.Flights, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint(parts ...string) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	return base + "/" + c.cfg.Version + "/flights/live/search/" + strings.Join(parts, "/")
}

// Create starts a remote search. Any failure here is final.
func (c *Client) Create(ctx context.Context, req model.SearchRequest) (*Session, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	body, err := json.Marshal(c.toCreateRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	res, header, err := c.do(ctx, http.MethodPost, c.endpoint("create"), body)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			// 404 on create is a broken endpoint, not an unknown session.
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return nil, err
	}

	rawToken := header.Get(sessionTokenHeader)
	if rawToken == "" {
		rawToken = res.SessionToken
	}
	if rawToken == "" {
		return nil, fmt.Errorf("%w: create response carries no session token", ErrTransport)
	}
	res.SessionToken = rawToken

	s := newSession(rawToken, c.cfg.TokenSuffix, res)
	c.logger.Debug("flight search created",
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination),
		slog.String("token", s.Token),
		slog.String("status", string(res.Status)))
	return s, nil
}

// Poll fetches the latest snapshot of the session.
//
// When the remote side does not know the unsuffixed token, the poll is
// repeated once with the suffix appended. A second "not found" is returned
// as is.
func (c *Client) Poll(ctx context.Context, s *Session) (*model.FlightSearchResult, error) {
	s.State = StatePolling

	res, err := c.poll(ctx, s.Token)
	if errors.Is(err, ErrSessionNotFound) && c.cfg.TokenSuffix != "" && !strings.HasSuffix(s.Token, c.cfg.TokenSuffix) {
		suffixed := s.Token + c.cfg.TokenSuffix
		c.logger.Debug("retrying poll with suffixed token", slog.String("token", suffixed))

		res, err = c.poll(ctx, suffixed)
		c.metrics.TokenFallback(err == nil)
		if err == nil {
			s.Token = suffixed
		}
	}
	if err != nil {
		s.State = StateFailed
		return nil, err
	}

	if res.SessionToken == "" {
		res.SessionToken = s.RawToken
	}
	s.Result = res
	if res.Complete() {
		s.State = StateComplete
	}
	return res, nil
}

func (c *Client) poll(ctx context.Context, token string) (*model.FlightSearchResult, error) {
	c.metrics.SearchPolled()
	res, _, err := c.do(ctx, http.MethodPost, c.endpoint("poll", token), nil)
	return res, err
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*model.FlightSearchResult, http.Header, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil, ErrSessionNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, nil, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, truncate(payload, 256))
	}

	var res model.FlightSearchResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, nil, fmt.Errorf("%w: decode: %w", ErrTransport, err)
	}
	return &res, resp.Header, nil
}

func validate(req model.SearchRequest) error {
	if !isLocationCode(req.Origin) {
		return fmt.Errorf("%w: bad origin %q", ErrInvalidRequest, req.Origin)
	}
	if !isLocationCode(req.Destination) {
		return fmt.Errorf("%w: bad destination %q", ErrInvalidRequest, req.Destination)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidRequest)
	}
	if req.ReturnDate != nil && req.ReturnDate.Before(req.Date) {
		return fmt.Errorf("%w: return date before departure", ErrInvalidRequest)
	}
	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult required", ErrInvalidRequest)
	}
	for _, age := range req.ChildrenAges {
		if age < 0 || age > 17 {
			return fmt.Errorf("%w: child age %d out of range", ErrInvalidRequest, age)
		}
	}
	return nil
}

func isLocationCode(code string) bool {
	if code == "" || len(code) > 8 {
		return false
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
