package cardserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/domain"
	"linkdeck/internal/qr"
)

var deck = []domain.Link{
	{URL: "https://github.com/jane", Title: "GitHub", Icon: "🐙"},
	{URL: "https://jane.dev", Title: "Website"},
}

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	New(deck, qr.DefaultOptions(), 128).Router().ServeHTTP(rec, req)
	return rec
}

func TestListLinks(t *testing.T) {
	rec := serve(t, httptest.NewRequest("GET", "/links", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var cards []Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, Card{Page: 1, URL: "https://github.com/jane", Title: "GitHub", Icon: "🐙"}, cards[0])
	assert.Equal(t, 2, cards[1].Page)
}

func TestGetCardIsOneBased(t *testing.T) {
	rec := serve(t, httptest.NewRequest("GET", "/links/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var card Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "https://jane.dev", card.URL)
}

func TestGetCardOutOfRange(t *testing.T) {
	for _, path := range []string{"/links/0", "/links/3", "/links/0/qr.png"} {
		rec := serve(t, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestQRCodePNG(t *testing.T) {
	rec := serve(t, httptest.NewRequest("GET", "/links/1/qr.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
}

func TestRequestIDGeneratedOrKept(t *testing.T) {
	rec := serve(t, httptest.NewRequest("GET", "/health", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(t, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestDeckIsCopied(t *testing.T) {
	links := []domain.Link{{URL: "https://a.example", Title: "A"}}
	s := New(links, qr.DefaultOptions(), 0)
	links[0].URL = "https://changed.example"

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/links/1", nil))
	assert.Contains(t, rec.Body.String(), "https://a.example")
}
