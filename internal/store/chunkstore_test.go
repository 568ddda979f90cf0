package store

import (
	"testing"

	"github.com/ozkanacar/bolumrag/internal/model"
)

func TestChunkStoreAddGet(t *testing.T) {
	s := NewChunkStore()
	chunk := model.Chunk{DocID: "doc1", ChunkID: "c1", SectionID: "s1", Text: "kayıt", StartOffset: 0, EndOffset: 5}
	s.Add(chunk)

	got, ok := s.Get("doc1", "c1")
	if !ok {
		t.Fatalf("expected chunk to be found")
	}
	if got != chunk {
		t.Fatalf("expected %+v, got %+v", chunk, got)
	}

	if _, ok := s.Get("doc1", "missing"); ok {
		t.Fatalf("expected missing chunk lookup to report absence")
	}
	if s.Size() != 1 {
		t.Fatalf("expected size 1, got %d", s.Size())
	}
}

func TestChunkStoreReplacesDuplicateIdentity(t *testing.T) {
	s := NewChunkStore()
	s.Add(model.Chunk{DocID: "doc1", ChunkID: "c1", Text: "old"})
	s.Add(model.Chunk{DocID: "doc1", ChunkID: "c1", Text: "new"})

	if s.Size() != 1 {
		t.Fatalf("expected duplicate identity to replace, size = %d", s.Size())
	}
	got, _ := s.Get("doc1", "c1")
	if got.Text != "new" {
		t.Fatalf("expected replacement text, got %q", got.Text)
	}
	if len(s.All()) != 1 {
		t.Fatalf("expected All to return 1 chunk, got %d", len(s.All()))
	}
}

func TestChunkStoreDocumentTitles(t *testing.T) {
	s := NewChunkStore()
	if _, ok := s.DocumentTitle("doc1"); ok {
		t.Fatalf("expected no title for unknown document")
	}
	s.SetDocumentTitle("doc1", "Öğrenci kayıt kılavuzu")
	title, ok := s.DocumentTitle("doc1")
	if !ok || title != "Öğrenci kayıt kılavuzu" {
		t.Fatalf("unexpected title %q (found=%v)", title, ok)
	}
}
