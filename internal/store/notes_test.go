package store

import (
	"context"
	"testing"
)

func TestNoteLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.CreateNote(ctx, "shopping", "buy milk")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	n, err := s.GetNote(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if n.Title != "shopping" || n.Content != "buy milk" {
		t.Errorf("unexpected note: %+v", n)
	}

	if err := s.UpdateNote(ctx, id, "buy milk and eggs"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	n, _ = s.GetNote(ctx, id)
	if n.Content != "buy milk and eggs" {
		t.Errorf("expected updated content, got %q", n.Content)
	}

	if err := s.DeleteNote(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.GetNote(ctx, id); err == nil {
		t.Error("expected an error after delete")
	}
}

func TestListNotes_NewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, _ := s.CreateNote(ctx, "first", "a")
	second, _ := s.CreateNote(ctx, "second", "b")

	notes, err := s.ListNotes(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != second || notes[1].ID != first {
		t.Errorf("expected newest first, got %v", notes)
	}
}

func TestNoteOperations_NotFound(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.UpdateNote(ctx, 99, "x"); err == nil {
		t.Error("expected an error updating a missing note")
	}
	if err := s.DeleteNote(ctx, 99); err == nil {
		t.Error("expected an error deleting a missing note")
	}
}
