package providers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/todo/internal/model"
	"github.com/ja-he/todo/internal/storage"
	"github.com/ja-he/todo/internal/storage/providers"
)

func newProvider(srv *httptest.Server) *providers.HTTPPlanProvider {
	return providers.NewHTTPPlanProvider(srv.URL+"/", 2*time.Second, zerolog.Nop())
}

func TestAddPlan_PostsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, err := uuid.Parse(r.Header.Get(providers.RequestIDHeader))
		assert.NoError(t, err, "request id should be a UUID")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":null,"title":"Standup","from_hr":9,"from_min":30,"to_hr":null,"to_min":null}`, string(raw))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	status, err := newProvider(srv).AddPlan(context.Background(), model.PlanDraft{
		Title: "Standup",
		Start: &model.Timestamp{Hour: 9, Minute: 30},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status.Code)
	assert.Equal(t, "201 Created", status.String())
	assert.True(t, status.Success())
}

func TestGetPlanIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[3, 1, 2]`))
	}))
	defer srv.Close()

	status, ids, err := newProvider(srv).GetPlanIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "200 OK", status.String())
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestGetPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/5", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id": 5, "title": "Standup", "from_hr": 9, "from_min": 30, "to_hr": 10, "to_min": 0,
		})
	}))
	defer srv.Close()

	status, plan, err := newProvider(srv).GetPlan(context.Background(), "5")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status.Code)
	require.NotNil(t, plan)
	assert.Equal(t, "[5] 09:30 - 10:00 Standup", plan.String())
}

func TestGetPlan_DecodeFailureKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such plan", http.StatusNotFound)
	}))
	defer srv.Close()

	status, plan, err := newProvider(srv).GetPlan(context.Background(), "42")

	assert.ErrorIs(t, err, storage.ErrDecode)
	assert.Nil(t, plan)
	assert.Equal(t, "404 Not Found", status.String())
}

func TestGetPlan_IDIsEscapedNotValidated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/not a number", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	status, err := newProvider(srv).RemovePlan(context.Background(), "not a number")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, status.Code)
	assert.False(t, status.Success())
}

func TestRemoveAllPlans(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/", r.URL.Path)
	}))
	defer srv.Close()

	status, err := newProvider(srv).RemoveAllPlans(context.Background())

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "200 OK", status.String())
}

func TestUnavailable(t *testing.T) {
	p := providers.NewHTTPPlanProvider("http://127.0.0.1:1/", time.Second, zerolog.Nop()) // nothing listening

	_, err := p.RemoveAllPlans(context.Background())

	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	p := providers.NewHTTPPlanProvider(srv.URL+"/", 50*time.Millisecond, zerolog.Nop())
	_, _, err := p.GetPlanIDs(context.Background())

	assert.ErrorIs(t, err, storage.ErrUnavailable)
}
