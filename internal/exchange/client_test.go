package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestUSD_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","date":"2025-06-03","rates":{"USD":1,"EUR":0.9,"GNF":8650}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v4", 5*time.Second)
	latest, err := c.LatestUSD(context.Background())
	require.NoError(t, err)

	eur, err := latest.Rate("EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.9, eur)

	_, err = latest.Rate("XOF")
	assert.ErrorIs(t, err, ErrMissingRate)
}

func TestLatestUSD_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).LatestUSD(context.Background())
	require.ErrorContains(t, err, "unexpected status code 429")
}

func TestLatestUSD_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 50*time.Millisecond).LatestUSD(context.Background())
	require.Error(t, err)
}

func TestLatestUSD_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).LatestUSD(context.Background())
	require.ErrorContains(t, err, "failed to unmarshal response")
}
