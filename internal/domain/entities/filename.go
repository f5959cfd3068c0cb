package entities

import (
	"regexp"
	"strings"
	"time"
)

// FileNamePrefix is the leading component of every journal file name.
const FileNamePrefix = "decisionlog"

// fileNameStampLayout is the compact UTC timestamp embedded in new file names.
const fileNameStampLayout = "20060102T150405Z"

// reJournalFileName matches remote file names produced by this application,
// e.g. "decisionlog_jdoe_20240101T000000Z.json".
var reJournalFileName = regexp.MustCompile(`^decisionlog_[a-z0-9_]+_\d{8}T\d{6}Z\.json$`)

// NewFileName builds the canonical file name for a new journal file:
// decisionlog_<account-slug>_<compact-UTC-timestamp>.json.
func NewFileName(accountSlug string, now time.Time) string {
	return FileNamePrefix + "_" + accountSlug + "_" + now.UTC().Format(fileNameStampLayout) + ".json"
}

// IsJournalFileName reports whether a remote file name follows the journal
// naming convention. Listing uses this to filter out unrelated files the
// account may keep in the same store.
func IsJournalFileName(name string) bool {
	return reJournalFileName.MatchString(strings.TrimSpace(name))
}
