// Package vector adapts the Neo4j-backed VectorStore to the triage
// VectorMemoryPort, keyed on triage-specific metadata instead of the
// email-recipient schema the teacher's VectorStore was built for.
package vector

import (
	"context"
	"fmt"

	"worker_server/core/port/out"
)

// MemoryAdapter wraps an out.VectorStore (graph.VectorAdapter) so the
// triage pipeline can retrieve/write similar-reply examples without
// depending on the wider email/recipient-oriented VectorStore surface.
type MemoryAdapter struct {
	store out.VectorStore
}

func New(store out.VectorStore) *MemoryAdapter {
	return &MemoryAdapter{store: store}
}

// Retrieve implements out.VectorMemoryPort. Absence of a usable store
// degrades to an empty, nil-error result per spec.md §6 — memory is
// optional, never a hard dependency.
func (m *MemoryAdapter) Retrieve(ctx context.Context, queryEmbedding []float32, k int) ([]out.MemoryRecord, error) {
	if m.store == nil {
		return nil, nil
	}
	results, err := m.store.Search(ctx, queryEmbedding, k)
	if err != nil {
		return nil, fmt.Errorf("vector memory search: %w", err)
	}

	records := make([]out.MemoryRecord, 0, len(results))
	for _, r := range results {
		records = append(records, out.MemoryRecord{
			Text: r.Snippet,
			Metadata: map[string]string{
				"id":      r.ID,
				"subject": r.Subject,
			},
		})
	}
	return records, nil
}

// Write implements out.VectorMemoryPort.
func (m *MemoryAdapter) Write(ctx context.Context, record out.MemoryRecord) error {
	if m.store == nil {
		return nil
	}
	meta := make(map[string]interface{}, len(record.Metadata))
	for k, v := range record.Metadata {
		meta[k] = v
	}
	meta["text"] = record.Text

	id := record.Metadata["id"]
	if id == "" {
		return fmt.Errorf("vector memory write: record missing id metadata")
	}
	if err := m.store.Store(ctx, id, record.Embedding, meta); err != nil {
		return fmt.Errorf("vector memory store: %w", err)
	}
	return nil
}

var _ out.VectorMemoryPort = (*MemoryAdapter)(nil)
