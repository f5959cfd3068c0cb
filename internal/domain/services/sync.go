package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/ports"
)

// SyncService loads, persists, and conflict-checks journal documents against
// the remote file store. Writes are serialized per file identifier so the
// remote timestamp check and the upload are atomic from the caller's point
// of view.
type SyncService struct {
	store      ports.FileStore
	session    *Session
	normalizer *Normalizer
	logger     zerolog.Logger

	mu    sync.Mutex
	gates map[string]*sync.Mutex
}

// NewSyncService creates a new sync service.
func NewSyncService(store ports.FileStore, session *Session, normalizer *Normalizer, logger zerolog.Logger) *SyncService {
	return &SyncService{
		store:      store,
		session:    session,
		normalizer: normalizer,
		logger:     logger,
		gates:      make(map[string]*sync.Mutex),
	}
}

// ListFiles returns descriptors for remote files that follow the journal
// naming convention, newest first.
func (s *SyncService) ListFiles(ctx context.Context) ([]ports.FileDescriptor, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing remote files: %w", err)
	}

	candidates := make([]ports.FileDescriptor, 0, len(files))
	for _, f := range files {
		if entities.IsJournalFileName(f.Name) {
			candidates = append(candidates, f)
		}
	}
	sortDescriptors(candidates)
	return candidates, nil
}

// Create writes a new empty journal file for the given account slug and
// opens it in the session.
func (s *SyncService) Create(ctx context.Context, accountSlug string) (ports.FileDescriptor, error) {
	doc := entities.NewDocument(accountSlug)
	name := entities.NewFileName(accountSlug, time.Now())
	return s.CreateFrom(ctx, name, doc)
}

// CreateFrom writes a new journal file with the given name and content and
// opens it in the session. The document must already be normalized.
func (s *SyncService) CreateFrom(ctx context.Context, name string, doc *entities.Document) (ports.FileDescriptor, error) {
	if err := doc.Validate(); err != nil {
		return ports.FileDescriptor{}, ports.NewSchemaError(fmt.Sprintf("document failed validation: %v", err))
	}
	data, err := Serialize(doc)
	if err != nil {
		return ports.FileDescriptor{}, err
	}

	desc, err := s.store.Create(ctx, name, data)
	if err != nil {
		return ports.FileDescriptor{}, fmt.Errorf("creating remote file: %w", err)
	}

	s.session.Open(desc.ID, desc.Name, doc, desc.Modified)
	s.logger.Info().Str("file_id", desc.ID).Str("name", desc.Name).Msg("created journal file")
	return desc, nil
}

// Load fetches, normalizes, and opens a remote journal file. Repairs
// performed by the normalizer are logged, never surfaced as errors.
func (s *SyncService) Load(ctx context.Context, fileID string) (*entities.Document, error) {
	data, modified, err := s.store.Read(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("reading remote file: %w", err)
	}

	doc, repairs, err := s.normalizer.Normalize(data)
	if err != nil {
		return nil, err
	}
	for _, r := range repairs {
		s.logger.Warn().Str("file_id", fileID).Str("path", r.Path).Msg(r.Action)
	}

	desc, err := s.resolveName(ctx, fileID)
	if err != nil {
		return nil, err
	}

	s.session.Open(fileID, desc, doc, modified)
	s.logger.Info().
		Str("file_id", fileID).
		Int("decisions", len(doc.Decisions)).
		Int("repairs", len(repairs)).
		Msg("loaded journal file")
	return doc, nil
}

// Save validates and uploads the open document. Before uploading it compares
// the remote modification timestamp against the session's last-synced
// timestamp; a strictly newer remote fails with a ConflictError and nothing
// is transmitted. With force set the comparison is skipped (the caller has
// chosen to overwrite). On success the session's last-synced timestamp
// advances to the value returned by the write.
func (s *SyncService) Save(ctx context.Context, force bool) error {
	doc, ok := s.session.Current()
	if !ok {
		return fmt.Errorf("no document is open")
	}
	fileID := s.session.FileID()

	gate := s.gate(fileID)
	gate.Lock()
	defer gate.Unlock()

	if err := doc.Validate(); err != nil {
		return ports.NewSchemaError(fmt.Sprintf("document failed validation: %v", err))
	}

	if !force {
		remote, err := s.store.Stat(ctx, fileID)
		if err != nil {
			return fmt.Errorf("checking remote file: %w", err)
		}
		lastSynced := s.session.LastSyncedAt()
		if remote.Modified.After(lastSynced) {
			return &ports.ConflictError{
				FileID:         fileID,
				RemoteModified: remote.Modified,
				LastSynced:     lastSynced,
			}
		}
	}

	// A failed save must leave the document exactly as it was, so the
	// touched timestamp is rolled back on every error path.
	prevUpdated := doc.Meta.UpdatedAt
	doc.Touch()
	data, err := Serialize(doc)
	if err != nil {
		doc.Meta.UpdatedAt = prevUpdated
		return err
	}

	modified, err := s.store.Write(ctx, fileID, data)
	if err != nil {
		doc.Meta.UpdatedAt = prevUpdated
		return fmt.Errorf("writing remote file: %w", err)
	}

	s.session.AdvanceSync(modified)
	s.logger.Info().
		Str("file_id", fileID).
		Time("synced_at", modified).
		Bool("forced", force).
		Msg("saved journal file")
	return nil
}

// gate returns the write mutex for a file, creating it on first use.
func (s *SyncService) gate(fileID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gates[fileID]
	if !ok {
		g = &sync.Mutex{}
		s.gates[fileID] = g
	}
	return g
}

// resolveName looks up the file name for a file ID, falling back to the ID
// when the listing does not include it.
func (s *SyncService) resolveName(ctx context.Context, fileID string) (string, error) {
	desc, err := s.store.Stat(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("checking remote file: %w", err)
	}
	if desc.Name == "" {
		return fileID, nil
	}
	return desc.Name, nil
}

// Serialize encodes a document in the canonical persisted format. The same
// encoding is used for remote writes and local exports.
func Serialize(doc *entities.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

func sortDescriptors(files []ports.FileDescriptor) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})
}
