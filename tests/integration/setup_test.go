// Package integration exercises the full stack end to end: the HTTP file
// store client, the sync and journal services, and the normalizer, against an
// in-process fake of the remote file-storage service.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/seanwalsh/declog/internal/domain/services"
	"github.com/seanwalsh/declog/internal/infrastructure/auth"
	"github.com/seanwalsh/declog/internal/infrastructure/filestore/remote"
)

const testToken = "integration-token"

// fakeFile is a file held by the fake store.
type fakeFile struct {
	ID       string
	Name     string
	Content  json.RawMessage
	Modified time.Time
}

// fakeStore is an in-memory implementation of the remote file-storage API.
// It tracks write counts so tests can assert that a conflicted save never
// reached the wire.
type fakeStore struct {
	mu         sync.Mutex
	files      map[string]*fakeFile
	nextID     int
	WriteCount int
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string]*fakeFile)}
}

// Bump advances a file's modification timestamp without touching its
// content, simulating a write from another device.
func (s *fakeStore) Bump(fileID string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.files[fileID]
	f.Modified = time.Now().UTC()
	return f.Modified
}

// Content returns a copy of a file's stored bytes.
func (s *fakeStore) Content(fileID string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.files[fileID].Content...)
}

type wireFile struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ModifiedAt time.Time       `json:"modifiedAt"`
	Content    json.RawMessage `json:"content,omitempty"`
}

func (s *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v1/files")
	switch {
	case path == "" && r.Method == http.MethodGet:
		out := make([]wireFile, 0, len(s.files))
		for _, f := range s.files {
			out = append(out, wireFile{ID: f.ID, Name: f.Name, ModifiedAt: f.Modified})
		}
		writeJSON(w, http.StatusOK, map[string]any{"files": out})

	case path == "" && r.Method == http.MethodPost:
		var body wireFile
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		s.nextID++
		f := &fakeFile{
			ID:       fmt.Sprintf("f-%d", s.nextID),
			Name:     body.Name,
			Content:  body.Content,
			Modified: time.Now().UTC(),
		}
		s.files[f.ID] = f
		writeJSON(w, http.StatusCreated, wireFile{ID: f.ID, Name: f.Name, ModifiedAt: f.Modified})

	case strings.HasSuffix(path, "/meta") && r.Method == http.MethodGet:
		id := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/meta")
		f, ok := s.files[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "file not found"})
			return
		}
		writeJSON(w, http.StatusOK, wireFile{ID: f.ID, Name: f.Name, ModifiedAt: f.Modified})

	case r.Method == http.MethodGet:
		f, ok := s.files[strings.TrimPrefix(path, "/")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "file not found"})
			return
		}
		writeJSON(w, http.StatusOK, wireFile{ID: f.ID, Name: f.Name, ModifiedAt: f.Modified, Content: f.Content})

	case r.Method == http.MethodPut:
		f, ok := s.files[strings.TrimPrefix(path, "/")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "file not found"})
			return
		}
		var body wireFile
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		s.WriteCount++
		f.Content = body.Content
		f.Modified = time.Now().UTC()
		writeJSON(w, http.StatusOK, wireFile{ID: f.ID, Name: f.Name, ModifiedAt: f.Modified})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// testEnv wires the full stack against a fake store. Each call to newClient
// models a fresh process talking to the same remote.
type testEnv struct {
	store   *fakeStore
	server  *httptest.Server
	session *services.Session
	sync    *services.SyncService
	journal *services.JournalService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	server := httptest.NewServer(store)
	t.Cleanup(server.Close)

	env := &testEnv{store: store, server: server}
	env.session, env.sync, env.journal = newStack(t, server.URL)
	return env
}

// newClient builds a second, independent session and service stack against
// the same fake store, as another process or device would.
func (e *testEnv) newClient(t *testing.T) (*services.Session, *services.SyncService, *services.JournalService) {
	t.Helper()
	return newStack(t, e.server.URL)
}

// decisionInput builds a DecisionInput from the fields these tests vary.
func decisionInput(title, date *string, importance *int, tags []string) services.DecisionInput {
	return services.DecisionInput{Title: title, Date: date, Importance: importance, Tags: tags}
}

func newStack(t *testing.T, baseURL string) (*services.Session, *services.SyncService, *services.JournalService) {
	t.Helper()

	client, err := remote.NewClient(remote.Options{
		BaseURL: baseURL,
		Tokens:  auth.NewStaticSource(testToken),
	})
	if err != nil {
		t.Fatalf("creating remote client: %v", err)
	}

	session := services.NewSession()
	syncService := services.NewSyncService(client, session, services.NewNormalizer(), zerolog.Nop())
	journal := services.NewJournalService(session)
	return session, syncService, journal
}
