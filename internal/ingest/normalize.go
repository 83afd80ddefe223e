// Package ingest turns loosely structured tabular input into well
// formed record drafts. Header casing and punctuation are irrelevant:
// "Issue Name", "issueName" and "issue_name" all address the same
// field. Missing or unparseable values fall back to defaults instead of
// failing the batch.
package ingest

import (
	"errors"
	"strconv"
	"strings"
)

const (
	DefaultModule       = "N/A"
	DefaultErrorCode    = "Untitled Issue"
	DefaultDescription  = "No description"
	DefaultSolutionType = "User Guidance"
	DefaultSteps        = "No steps provided"
	DefaultLogCategory  = 2703
)

var ErrEmptyFile = errors.New("file appears to be empty")

// Row is one parsed input line, keyed by its raw header names.
type Row map[string]string

// Draft is a normalized record ready for insertion, always PENDING.
type Draft struct {
	Module           string
	ErrorCode        string
	ErrorDescription string
	SolutionType     string
	StepsToResolve   string
	LogCategory      int
	LogSubcategory   *int
	Notes            string
}

// NormalizeKey lowercases a header name and strips everything that is
// not a letter or digit, so heterogeneous spreadsheet headers resolve
// to one canonical key.
func NormalizeKey(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Normalize maps every input row to a draft, one to one and in input
// order. It is a pure transformation; persistence is the caller's
// concern. An empty input yields ErrEmptyFile.
func Normalize(rows []Row) ([]Draft, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	drafts := make([]Draft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, NormalizeRow(row))
	}

	return drafts, nil
}

// NormalizeRow maps a single raw row to a draft.
func NormalizeRow(row Row) Draft {
	fields := make(map[string]string, len(row))
	for key, value := range row {
		fields[NormalizeKey(key)] = strings.TrimSpace(value)
	}

	return ApplyDefaults(Draft{
		Module:           pick(fields, "", "module"),
		ErrorCode:        pick(fields, "", "issuename", "errorcode"),
		ErrorDescription: pick(fields, "", "issuedescription", "errordescription"),
		SolutionType:     pick(fields, "", "solutiontype"),
		StepsToResolve:   pick(fields, "", "stepbystep", "stepstoresolve"),
		LogCategory:      pickInt(fields["logcategory"], 0),
		LogSubcategory:   pickOptionalInt(fields["logsubcategory"]),
		Notes:            pick(fields, "", "notes", "expertcomment"),
	})
}

// ApplyDefaults fills the defaulting policy into a partial draft. The
// single-submission path uses it directly; a zero LogCategory counts as
// absent and takes the sentinel default.
func ApplyDefaults(d Draft) Draft {
	if d.Module == "" {
		d.Module = DefaultModule
	}
	if d.ErrorCode == "" {
		d.ErrorCode = DefaultErrorCode
	}
	if d.ErrorDescription == "" {
		d.ErrorDescription = DefaultDescription
	}
	if d.SolutionType == "" {
		d.SolutionType = DefaultSolutionType
	}
	if d.StepsToResolve == "" {
		d.StepsToResolve = DefaultSteps
	}
	if d.LogCategory == 0 {
		d.LogCategory = DefaultLogCategory
	}

	return d
}

func pick(fields map[string]string, fallback string, keys ...string) string {
	for _, key := range keys {
		if v := fields[key]; v != "" {
			return v
		}
	}

	return fallback
}

// pickInt never fails: an absent or unparseable value downgrades to the
// fallback so a bad cell cannot block the batch.
func pickInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}

func pickOptionalInt(value string) *int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &n
}
