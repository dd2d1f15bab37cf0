package testhelpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/insurewise/policy-portal/internal/models"
)

// RecordedRequest is one call received by a CollectionStore.
type RecordedRequest struct {
	Method    string
	Path      string
	RequestID string
	Body      []byte
}

/*
CollectionStore is an in-memory stand-in for the remote /insurances
collection. It behaves like a json-server resource: records are kept in
insertion order, a POST with an id that already exists fails with 500, and
unknown ids answer 404 with an empty object.
*/
type CollectionStore struct {
	T      *testing.T
	Server *httptest.Server

	mu       sync.Mutex
	records  []models.PolicyRecord
	requests []RecordedRequest
	failWith int
}

// NewCollectionStore starts the fake and closes it when the test ends.
func NewCollectionStore(t *testing.T, seed ...models.PolicyRecord) *CollectionStore {
	t.Helper()

	s := &CollectionStore{T: t, records: append([]models.PolicyRecord(nil), seed...)}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/insurances", s.list).Methods(http.MethodGet)
	r.HandleFunc("/insurances", s.create).Methods(http.MethodPost)
	r.HandleFunc("/insurances/{id}", s.get).Methods(http.MethodGet)
	r.HandleFunc("/insurances/{id}", s.replace).Methods(http.MethodPut)
	r.HandleFunc("/insurances/{id}", s.remove).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Server.Close)
	return s
}

// URL is the collection endpoint, suitable as the portal's store URL.
func (s *CollectionStore) URL() string {
	return s.Server.URL + "/insurances"
}

// Records returns a copy of the stored records in store order.
func (s *CollectionStore) Records() []models.PolicyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PolicyRecord(nil), s.records...)
}

// Requests returns every request received so far.
func (s *CollectionStore) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// ResetRequests clears the request log, leaving records intact.
func (s *CollectionStore) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// FailWith makes every following request answer with status; 0 restores
// normal behaviour.
func (s *CollectionStore) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// ---------------------------------------------------------------------------
// handlers
// ---------------------------------------------------------------------------

func (s *CollectionStore) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: r.Header.Get("X-Request-ID"),
			Body:      body,
		})
		failWith := s.failWith
		s.mu.Unlock()

		if failWith != 0 {
			writeJSON(w, failWith, map[string]string{"error": http.StatusText(failWith)})
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *CollectionStore) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Records())
}

func (s *CollectionStore) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(mux.Vars(r)["id"])
	if i < 0 {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, s.records[i])
}

func (s *CollectionStore) create(w http.ResponseWriter, r *http.Request) {
	var rec models.PolicyRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == 0 {
		for _, existing := range s.records {
			if existing.ID > rec.ID {
				rec.ID = existing.ID
			}
		}
		rec.ID++
	} else if s.indexOf(strconv.Itoa(rec.ID)) >= 0 {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Insert failed, duplicate id"})
		return
	}

	s.records = append(s.records, rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *CollectionStore) replace(w http.ResponseWriter, r *http.Request) {
	var rec models.PolicyRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(mux.Vars(r)["id"])
	if i < 0 {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	rec.ID = s.records[i].ID
	s.records[i] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *CollectionStore) remove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(mux.Vars(r)["id"])
	if i < 0 {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	writeJSON(w, http.StatusOK, struct{}{})
}

// indexOf must be called with mu held.
func (s *CollectionStore) indexOf(rawID string) int {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return -1
	}
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
