package vector

import (
	"context"
	"errors"
	"testing"

	"worker_server/core/port/out"
)

type fakeVectorStore struct {
	searchResults []out.VectorSearchResult
	searchErr     error

	storedID    string
	storedMeta  map[string]interface{}
	storeErr    error
}

func (f *fakeVectorStore) Search(ctx context.Context, embedding []float32, topK int) ([]out.VectorSearchResult, error) {
	return f.searchResults, f.searchErr
}
func (f *fakeVectorStore) SearchWithFilter(ctx context.Context, embedding []float32, topK int, opts *out.VectorSearchOptions) ([]out.VectorSearchResult, error) {
	return f.searchResults, f.searchErr
}
func (f *fakeVectorStore) SearchByRecipient(ctx context.Context, userID, recipientEmail string, topK int) ([]out.VectorSearchResult, error) {
	return f.searchResults, f.searchErr
}
func (f *fakeVectorStore) Store(ctx context.Context, id string, embedding []float32, metadata map[string]interface{}) error {
	f.storedID = id
	f.storedMeta = metadata
	return f.storeErr
}
func (f *fakeVectorStore) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeVectorStore) GetByID(ctx context.Context, id string) (*out.VectorItem, error) {
	return nil, nil
}
func (f *fakeVectorStore) BatchStore(ctx context.Context, items []out.VectorItem) error { return nil }
func (f *fakeVectorStore) BatchDelete(ctx context.Context, ids []string) error          { return nil }

func TestRetrieveMapsSearchResultsToMemoryRecords(t *testing.T) {
	store := &fakeVectorStore{searchResults: []out.VectorSearchResult{
		{ID: "msg-1", Subject: "Renewal question", Snippet: "Thanks for reaching out..."},
	}}
	m := New(store)

	records, err := m.Retrieve(context.Background(), []float32{0.1, 0.2}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Text != "Thanks for reaching out..." {
		t.Fatalf("expected snippet as text, got %q", records[0].Text)
	}
	if records[0].Metadata["id"] != "msg-1" || records[0].Metadata["subject"] != "Renewal question" {
		t.Fatalf("expected id/subject metadata, got %v", records[0].Metadata)
	}
}

func TestRetrieveDegradesToEmptyWithNoStore(t *testing.T) {
	m := New(nil)
	records, err := m.Retrieve(context.Background(), nil, 5)
	if err != nil {
		t.Fatalf("expected nil error with no store configured, got %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %v", records)
	}
}

func TestRetrievePropagatesSearchError(t *testing.T) {
	store := &fakeVectorStore{searchErr: errors.New("neo4j unavailable")}
	m := New(store)

	if _, err := m.Retrieve(context.Background(), nil, 5); err == nil {
		t.Fatal("expected the search error to propagate")
	}
}

func TestWriteRequiresIDMetadata(t *testing.T) {
	store := &fakeVectorStore{}
	m := New(store)

	err := m.Write(context.Background(), out.MemoryRecord{Text: "a reply", Metadata: map[string]string{"subject": "no id here"}})
	if err == nil {
		t.Fatal("expected an error when id metadata is missing")
	}
}

func TestWriteStoresTextAlongsideMetadata(t *testing.T) {
	store := &fakeVectorStore{}
	m := New(store)

	err := m.Write(context.Background(), out.MemoryRecord{
		Text:     "Sure, I can meet Thursday.",
		Metadata: map[string]string{"id": "msg-2", "intent": "scheduling"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.storedID != "msg-2" {
		t.Fatalf("expected store id msg-2, got %q", store.storedID)
	}
	if store.storedMeta["text"] != "Sure, I can meet Thursday." {
		t.Fatalf("expected text merged into metadata, got %v", store.storedMeta)
	}
	if store.storedMeta["intent"] != "scheduling" {
		t.Fatalf("expected intent metadata preserved, got %v", store.storedMeta)
	}
}

var _ out.VectorStore = (*fakeVectorStore)(nil)
