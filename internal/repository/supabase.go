package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"club-site/internal/model"
)

const maxResponseBytes = 4 << 20

// SupabaseConfig содержит адрес проекта и публичный (anon) ключ.
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// Supabase читает таблицы events и team_members через REST-интерфейс PostgREST.
type Supabase struct {
	baseURL *url.URL
	key     string
	client  *http.Client
}

// NewSupabase создаёт клиента PostgREST. Если client == nil, используется клиент с таймаутом 10 секунд.
func NewSupabase(cfg SupabaseConfig, client *http.Client) (*Supabase, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse supabase url: %q is not absolute", cfg.URL)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Supabase{baseURL: u, key: cfg.AnonKey, client: client}, nil
}

// ListEvents выполняет запрос /rest/v1/events?is_upcoming=eq.<flag>&order=event_date.<dir>.
func (s *Supabase) ListEvents(ctx context.Context, q model.EventQuery) ([]model.Event, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("is_upcoming", "eq."+strconv.FormatBool(q.Upcoming))
	params.Set("order", "event_date."+direction(q.Ascending))

	events := make([]model.Event, 0)
	if err := s.query(ctx, "events", params, &events); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}

// ListMembers выполняет запрос /rest/v1/team_members?order=display_order.asc.
func (s *Supabase) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "display_order.asc")

	members := make([]model.TeamMember, 0)
	if err := s.query(ctx, "team_members", params, &members); err != nil {
		return nil, fmt.Errorf("query team: %w", err)
	}
	return members, nil
}

func (s *Supabase) query(ctx context.Context, table string, params url.Values, out any) error {
	u := s.baseURL.JoinPath("rest", "v1", table)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// PostgREST отдаёт ошибки в виде {"code": ..., "message": ..., "details": ..., "hint": ...}
		return fmt.Errorf("%w: %d %s (code %q)", ErrUnexpectedStatus, resp.StatusCode,
			gjson.GetBytes(body, "message").String(), gjson.GetBytes(body, "code").String())
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return ErrMalformedResponse
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func direction(ascending bool) string {
	if ascending {
		return "asc"
	}
	return "desc"
}
