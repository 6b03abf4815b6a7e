package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ja-he/todo/internal/model"
	"github.com/ja-he/todo/internal/storage"
)

// RequestIDHeader is the header each request carries a fresh UUID in, so
// requests can be matched up with the plan server's logs.
const RequestIDHeader = "X-Request-Id"

// HTTPPlanProvider is a storage.PlanProvider backed by a plan server's REST
// API:
//
//	POST   /       add a plan
//	GET    /       list the IDs of all plans
//	GET    /{id}   get a single plan
//	DELETE /{id}   remove a single plan
//	DELETE /       remove all plans
//
// Requests are never retried.
type HTTPPlanProvider struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewHTTPPlanProvider creates a provider for the plan server at baseURL,
// which is expected to end in '/'. A timeout of zero means requests may take
// arbitrarily long.
func NewHTTPPlanProvider(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPPlanProvider {
	return &HTTPPlanProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger,
	}
}

var _ storage.PlanProvider = &HTTPPlanProvider{}

// AddPlan posts the draft to the server.
func (p *HTTPPlanProvider) AddPlan(ctx context.Context, draft model.PlanDraft) (storage.Status, error) {
	body, err := json.Marshal(draft.Record())
	if err != nil {
		return storage.Status{}, fmt.Errorf("could not encode plan (%w)", err)
	}
	status, _, err := p.do(ctx, http.MethodPost, p.baseURL, body)
	return status, err
}

// GetPlanIDs fetches the IDs of all plans.
func (p *HTTPPlanProvider) GetPlanIDs(ctx context.Context) (storage.Status, []int, error) {
	status, respBody, err := p.do(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return status, nil, err
	}
	var ids []int
	if err := json.Unmarshal(respBody, &ids); err != nil {
		return status, nil, fmt.Errorf("%w: plan IDs (status %s): %s", storage.ErrDecode, status, err)
	}
	return status, ids, nil
}

// GetPlan fetches the plan with the given ID.
func (p *HTTPPlanProvider) GetPlan(ctx context.Context, id string) (storage.Status, *model.Plan, error) {
	status, respBody, err := p.do(ctx, http.MethodGet, p.planURL(id), nil)
	if err != nil {
		return status, nil, err
	}
	var record model.PlanRecord
	if err := json.Unmarshal(respBody, &record); err != nil {
		return status, nil, fmt.Errorf("%w: plan '%s' (status %s): %s", storage.ErrDecode, id, status, err)
	}
	if (record.FromHr == nil) != (record.FromMin == nil) || (record.ToHr == nil) != (record.ToMin == nil) {
		p.log.Warn().Str("id", id).Msg("server sent a plan with a partial time, which will be ignored")
	}
	plan := model.PlanFromRecord(record)
	return status, &plan, nil
}

// RemovePlan deletes the plan with the given ID.
func (p *HTTPPlanProvider) RemovePlan(ctx context.Context, id string) (storage.Status, error) {
	status, _, err := p.do(ctx, http.MethodDelete, p.planURL(id), nil)
	return status, err
}

// RemoveAllPlans deletes every plan.
func (p *HTTPPlanProvider) RemoveAllPlans(ctx context.Context) (storage.Status, error) {
	status, _, err := p.do(ctx, http.MethodDelete, p.baseURL, nil)
	return status, err
}

func (p *HTTPPlanProvider) planURL(id string) string {
	return p.baseURL + url.PathEscape(id)
}

// do performs a single request and reads the full response body.
func (p *HTTPPlanProvider) do(ctx context.Context, method, target string, body []byte) (storage.Status, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return storage.Status{}, nil, fmt.Errorf("could not create request %s %s (%w)", method, target, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	requestLog := p.log.With().Str("method", method).Str("url", target).Str("request-id", requestID).Logger()
	requestLog.Debug().Int("body-bytes", len(body)).Msg("sending request")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		requestLog.Error().Err(err).Msg("request failed")
		return storage.Status{}, nil, fmt.Errorf("%w: %s %s: %s", storage.ErrUnavailable, method, target, err)
	}
	defer resp.Body.Close()

	status := statusOf(resp)
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		requestLog.Error().Err(err).Stringer("status", status).Msg("reading response failed")
		return status, nil, fmt.Errorf("%w: reading response to %s %s: %s", storage.ErrUnavailable, method, target, err)
	}

	requestLog.Debug().
		Stringer("status", status).
		Int("body-bytes", len(respBody)).
		Dur("took", time.Since(start)).
		Msg("got response")
	return status, respBody, nil
}

func statusOf(resp *http.Response) storage.Status {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return storage.NewStatus(resp.StatusCode)
	}
	return storage.Status{Code: resp.StatusCode, Text: text}
}
