package parser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/parse", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Minjun beat Jiho 6-4 7-5", req["text"])

		json.NewEncoder(w).Encode(ParsedMatch{
			MatchType:   "singles",
			WinnerNames: []string{"Minjun"},
			LoserNames:  []string{"Jiho"},
			Score:       "6-4,7-5",
			MatchDate:   1717200000,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	parsed, err := client.ParseMatchText(context.Background(), "Minjun beat Jiho 6-4 7-5")
	require.NoError(t, err)
	assert.Equal(t, "singles", parsed.MatchType)
	assert.Equal(t, []string{"Minjun"}, parsed.WinnerNames)
	assert.Equal(t, []string{"Jiho"}, parsed.LoserNames)
	assert.Equal(t, "6-4,7-5", parsed.Score)
}

func TestParseMatchTextServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "could not understand input", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ParseMatchText(context.Background(), "gibberish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestParseMatchTextBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ParseMatchText(context.Background(), "anything")
	assert.Error(t, err)
}
