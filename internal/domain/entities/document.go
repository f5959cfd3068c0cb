// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// AppName identifies this application in persisted documents.
	AppName = "declog"
	// SchemaVersion is the current document schema version.
	SchemaVersion = "1"
)

// Meta holds document-level bookkeeping persisted alongside the decisions.
type Meta struct {
	App       string    `json:"app"`
	Version   string    `json:"version"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Document is the root persisted object: one journal file, all of its
// decisions. A Document exclusively owns its Decisions; no decision exists
// outside exactly one document.
type Document struct {
	Meta      Meta       `json:"meta"`
	Decisions []Decision `json:"decisions"`
}

// NewDocument creates an empty document owned by the given account.
func NewDocument(username string) *Document {
	now := time.Now().UTC()
	return &Document{
		Meta: Meta{
			App:       AppName,
			Version:   SchemaVersion,
			Username:  username,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Decisions: []Decision{},
	}
}

// Decision returns a pointer to the decision with the given ID, or nil.
func (d *Document) Decision(id string) *Decision {
	for i := range d.Decisions {
		if d.Decisions[i].ID == id {
			return &d.Decisions[i]
		}
	}
	return nil
}

// RemoveDecision deletes the decision with the given ID, preserving order.
// Returns false if no such decision exists.
func (d *Document) RemoveDecision(id string) bool {
	for i := range d.Decisions {
		if d.Decisions[i].ID == id {
			d.Decisions = append(d.Decisions[:i], d.Decisions[i+1:]...)
			return true
		}
	}
	return false
}

// Touch updates the document-level modification timestamp.
func (d *Document) Touch() {
	d.Meta.UpdatedAt = time.Now().UTC()
}

// Validate checks the document and everything it owns against the schema
// constraints. It is called before every save; a document that fails here is
// never transmitted.
func (d *Document) Validate() error {
	if err := validation.ValidateStruct(&d.Meta,
		validation.Field(&d.Meta.App, validation.Required),
		validation.Field(&d.Meta.Version, validation.Required),
	); err != nil {
		return fmt.Errorf("meta: %w", err)
	}
	for i := range d.Decisions {
		if err := d.Decisions[i].Validate(); err != nil {
			return fmt.Errorf("decision %d (%s): %w", i, d.Decisions[i].ID, err)
		}
	}
	return nil
}
