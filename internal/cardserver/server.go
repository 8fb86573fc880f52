// Package cardserver exposes a deck over HTTP: the links as JSON and each
// link's QR code as a PNG image.
package cardserver

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"linkdeck/internal/domain"
	"linkdeck/internal/qr"
)

// RequestIDHeader carries the id of each request in both directions
const RequestIDHeader = "X-Request-Id"

// Card is the JSON form of one deck entry
type Card struct {
	Page  int    `json:"page"` // one-based
	URL   string `json:"url"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// Server serves one immutable deck
type Server struct {
	deck    []domain.Link
	opts    qr.Options
	pngSize int
}

// New creates a server for deck. Codes are encoded with opts and exported at pngSize pixels.
func New(deck []domain.Link, opts qr.Options, pngSize int) *Server {
	if pngSize <= 0 {
		pngSize = 256
	}
	cp := make([]domain.Link, len(deck))
	copy(cp, deck)
	return &Server{deck: cp, opts: opts, pngSize: pngSize}
}

// Router returns the routes of the server
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK\n"))
	}).Methods("GET")
	r.HandleFunc("/links", s.listHandler).Methods("GET")
	r.HandleFunc("/links/{page:[0-9]+}", s.cardHandler).Methods("GET")
	r.HandleFunc("/links/{page:[0-9]+}/qr.png", s.qrHandler).Methods("GET")
	return r
}

// requestID tags every request with an id, keeping one the client sent
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		log.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listHandler(w http.ResponseWriter, r *http.Request) {
	cards := make([]Card, len(s.deck))
	for i, l := range s.deck {
		cards[i] = toCard(i, l)
	}
	writeJSON(w, cards)
}

func (s *Server) cardHandler(w http.ResponseWriter, r *http.Request) {
	i, ok := s.page(r)
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	writeJSON(w, toCard(i, s.deck[i]))
}

func (s *Server) qrHandler(w http.ResponseWriter, r *http.Request) {
	i, ok := s.page(r)
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	opts := s.opts
	opts.Payload = s.deck[i].URL
	engine, err := qr.New(opts)
	if err != nil {
		log.Printf("[%s] failed to encode %s: %v", w.Header().Get(RequestIDHeader), opts.Payload, err)
		http.Error(w, "could not encode link", http.StatusInternalServerError)
		return
	}
	data, err := engine.PNG(s.pngSize)
	if err != nil {
		log.Printf("[%s] failed to render png: %v", w.Header().Get(RequestIDHeader), err)
		http.Error(w, "could not render code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// page resolves the one-based {page} variable to an index into the deck
func (s *Server) page(r *http.Request) (int, bool) {
	n, err := strconv.Atoi(mux.Vars(r)["page"])
	if err != nil || n < 1 || n > len(s.deck) {
		return 0, false
	}
	return n - 1, true
}

func toCard(i int, l domain.Link) Card {
	return Card{Page: i + 1, URL: l.URL, Title: l.Title, Icon: l.Icon}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
