package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
)

// DocRef addresses one document, e.g. {"reports/2025-10-26/users", "U123"}.
type DocRef struct {
	Collection string
	ID         string
}

func (r DocRef) Path() string {
	return r.Collection + "/" + r.ID
}

// Document is a stored JSON object and its id within the collection.
type Document struct {
	ID   string
	Data json.RawMessage
}

// DataTo decodes the document into v.
func (d Document) DataTo(v interface{}) error {
	return json.Unmarshal(d.Data, v)
}

// Filter is an equality match on a top-level document field.
type Filter struct {
	Field string
	Value interface{}
}

type documentStore struct {
	db dbConn
}

func newDocumentStore(db dbConn) *documentStore {
	return &documentStore{db: db}
}

// Set merge-writes fields into the document, creating it if absent.
// Fields not named keep their stored value.
func (s *documentStore) Set(ctx context.Context, ref DocRef, fields map[string]interface{}) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ref.Path(), err)
	}

	query := `
		INSERT INTO documents (collection, doc_id, data, updated_at)
		VALUES (?, ?, json(?), ?)
		ON CONFLICT (collection, doc_id) DO UPDATE SET
			data = json_patch(documents.data, excluded.data),
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query, ref.Collection, ref.ID, string(data), time.Now().UTC())
	if err != nil {
		return storeError("set "+ref.Path(), err)
	}

	return nil
}

// Get returns nil when the document does not exist.
func (s *documentStore) Get(ctx context.Context, ref DocRef) (*Document, error) {
	query := `
		SELECT doc_id, data
		FROM documents
		WHERE collection = ? AND doc_id = ?
	`

	var (
		doc  Document
		data string
	)
	err := s.db.QueryRowContext(ctx, query, ref.Collection, ref.ID).Scan(&doc.ID, &data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get "+ref.Path(), err)
	}

	doc.Data = json.RawMessage(data)
	return &doc, nil
}

// List returns every document of collection ordered by id.
func (s *documentStore) List(ctx context.Context, collection string) ([]Document, error) {
	return s.Where(ctx, collection)
}

// Where returns the documents of collection matching all filters.
func (s *documentStore) Where(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	var sb strings.Builder
	sb.WriteString("SELECT doc_id, data FROM documents WHERE collection = ?")

	args := []interface{}{collection}
	for _, f := range filters {
		sb.WriteString(" AND json_extract(data, ?) = ?")
		args = append(args, "$."+f.Field, f.Value)
	}
	sb.WriteString(" ORDER BY doc_id")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, storeError("query "+collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			doc  Document
			data string
		)
		if err := rows.Scan(&doc.ID, &data); err != nil {
			return nil, storeError("scan "+collection, err)
		}
		doc.Data = json.RawMessage(data)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate "+collection, err)
	}

	return docs, nil
}

func storeError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", action, domain.ErrStoreUnavailable, err)
}
