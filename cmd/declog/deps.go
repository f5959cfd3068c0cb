package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/seanwalsh/declog/internal/application/handlers"
	"github.com/seanwalsh/declog/internal/domain/services"
	"github.com/seanwalsh/declog/internal/infrastructure/auth"
	"github.com/seanwalsh/declog/internal/infrastructure/config"
	"github.com/seanwalsh/declog/internal/infrastructure/filestore/local"
	"github.com/seanwalsh/declog/internal/infrastructure/filestore/remote"
	"github.com/seanwalsh/declog/internal/infrastructure/logger"
)

// Deps holds high-level dependencies for commands. Only handlers are exposed;
// services and adapters are internal.
type Deps struct {
	Config          *config.Config
	Session         *services.Session
	DocumentHandler *handlers.DocumentHandler
	DecisionHandler *handlers.DecisionHandler
	ReviewHandler   *handlers.ReviewHandler
	ImportHandler   *handlers.ImportHandler
	ExportHandler   *handlers.ExportHandler

	basePath string
	logger   zerolog.Logger
}

// withDeps loads config, builds dependencies, hydrates the session from the
// previous invocation, and calls the provided function. When the function
// succeeds, the session bookkeeping and the cached open document are
// persisted for the next invocation.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	tokens := auth.NewSource(cfg.Remote.TokenEnv)
	store, err := remote.NewClient(remote.Options{
		BaseURL:   cfg.Remote.BaseURL,
		Tokens:    tokens,
		Timeout:   cfg.Remote.Timeout(),
		UserAgent: "declog/" + version,
	})
	if err != nil {
		return fmt.Errorf("creating remote client: %w", err)
	}

	session := services.NewSession()
	normalizer := services.NewNormalizer()
	syncService := services.NewSyncService(store, session, normalizer, log)
	journalService := services.NewJournalService(session)

	if err := hydrateSession(cwd, session, normalizer, log); err != nil {
		return err
	}

	deps := &Deps{
		Config:          cfg,
		Session:         session,
		DocumentHandler: handlers.NewDocumentHandler(syncService, session),
		DecisionHandler: handlers.NewDecisionHandler(journalService, syncService),
		ReviewHandler:   handlers.NewReviewHandler(journalService, syncService),
		ImportHandler:   handlers.NewImportHandler(normalizer, syncService, session),
		ExportHandler:   handlers.NewExportHandler(session),
		basePath:        cwd,
		logger:          log,
	}

	if err := fn(deps); err != nil {
		return err
	}

	return persistSession(cwd, session)
}

// hydrateSession restores the open document from the previous invocation:
// bookkeeping from session.yaml, content from the local document cache. A
// missing or stale cache leaves the session closed rather than failing.
func hydrateSession(basePath string, session *services.Session, normalizer *services.Normalizer, log zerolog.Logger) error {
	book, err := config.LoadSession(basePath)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if !book.IsOpen() {
		return nil
	}

	data, err := local.ReadBytes(config.DocumentCachePath(basePath))
	if err != nil {
		log.Warn().Str("file_id", book.FileID).Msg("session cache missing, treating session as closed")
		return nil
	}

	doc, repairs, err := normalizer.Normalize(data)
	if err != nil {
		return fmt.Errorf("reading cached document: %w", err)
	}
	for _, r := range repairs {
		log.Warn().Str("path", r.Path).Msg(r.Action)
	}

	session.Open(book.FileID, book.FileName, doc, book.LastSyncedAt)
	return nil
}

// persistSession writes the session bookkeeping and document cache so the
// next invocation picks up where this one left off.
func persistSession(basePath string, session *services.Session) error {
	book := &config.SessionFile{}
	doc, open := session.Current()
	if open {
		book.FileID = session.FileID()
		book.FileName = session.FileName()
		book.LastSyncedAt = session.LastSyncedAt()
		if err := local.WriteDocument(config.DocumentCachePath(basePath), doc); err != nil {
			return fmt.Errorf("caching document: %w", err)
		}
	} else {
		if err := os.Remove(config.DocumentCachePath(basePath)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing document cache: %w", err)
		}
	}
	return book.Save(basePath)
}

// accountSlug returns the normalized account identifier used in file names.
func (d *Deps) accountSlug() string {
	return config.SanitizeAccount(d.Config.Remote.Account)
}
