// Package ingest turns the tabular friend-list dataset into parsed records.
package ingest

import (
	"strings"

	"github.com/persistorai/friendgraph/internal/models"
)

// ParseRecord extracts the node ID and cleaned friend list from one row.
// line is the 1-based position of the row in the source and is only used
// to identify the row in errors.
func ParseRecord(line int, row []string, schema models.Schema) (models.Record, error) {
	if len(row) < schema.MinColumns() {
		return models.Record{}, &models.RowError{Line: line, Columns: len(row), Err: models.ErrMissingColumn}
	}

	return models.Record{
		ID:      strings.TrimSpace(row[schema.IDColumn]),
		Friends: CleanFriendList(row[schema.FriendsColumn]),
	}, nil
}

// CleanFriendList splits a serialized list such as ["12","47","93"] into
// trimmed tokens. Empty or malformed text yields a single empty token; the
// graph builder decides whether that token becomes a node.
func CleanFriendList(raw string) []string {
	cleaned := strings.Trim(strings.TrimSpace(raw), `[]"`)
	cleaned = strings.ReplaceAll(cleaned, `"`, "")

	tokens := strings.Split(cleaned, ",")
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}

	return tokens
}
