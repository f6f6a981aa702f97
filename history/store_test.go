// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/store_test.go
// Summary: Tests for the scrollback search store.

package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/framegrace/texelgfx/cell"
	"github.com/framegrace/texelgfx/screen"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	s, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreCreateAndClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	s, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("failed to close store: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file not created")
	}
}

func TestIndexAndSearch(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	for i := int64(0); i < 10; i++ {
		text := fmt.Sprintf("output line %d", i)
		if i == 4 {
			text = "docker run nginx"
		}
		if err := s.IndexLine(i, now.Add(time.Duration(i)*time.Second), text); err != nil {
			t.Fatalf("failed to index line %d: %v", i, err)
		}
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	results, err := s.Search("docker", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].LineIdx != 4 || results[0].Content != "docker run nginx" {
		t.Errorf("unexpected match: %+v", results[0])
	}
}

func TestSearchNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Now()
	for i := int64(0); i < 5; i++ {
		s.IndexLine(i, base.Add(time.Duration(i)*time.Second), fmt.Sprintf("needle %d", i))
	}
	s.Flush()

	results, err := s.Search("needle", 3)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].LineIdx != 4 || results[1].LineIdx != 3 || results[2].LineIdx != 2 {
		t.Errorf("results not newest-first: %+v", results)
	}
}

func TestShortQueryFallsBackToLike(t *testing.T) {
	s := newTestStore(t)
	s.IndexLine(0, time.Now(), "ls -la /tmp")
	s.IndexLine(1, time.Now(), "cat notes.txt")
	s.Flush()

	results, err := s.Search("ls", 10)
	if err != nil {
		t.Fatalf("short search failed: %v", err)
	}
	if len(results) != 1 || results[0].LineIdx != 0 {
		t.Errorf("short query should match via LIKE, got %+v", results)
	}
}

func TestEmptyLinesSkipped(t *testing.T) {
	s := newTestStore(t)
	if err := s.IndexLine(0, time.Now(), ""); err != nil {
		t.Fatalf("indexing empty line errored: %v", err)
	}
	s.Flush()
	results, _ := s.Search("anything", 10)
	if len(results) != 0 {
		t.Errorf("empty lines must not be indexed, got %+v", results)
	}
}

func TestDeleteLine(t *testing.T) {
	s := newTestStore(t)
	s.IndexLine(7, time.Now(), "secret token")
	s.Flush()
	if err := s.DeleteLine(7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	results, _ := s.Search("secret", 10)
	if len(results) != 0 {
		t.Errorf("deleted line still matches: %+v", results)
	}
}

func TestIndexState(t *testing.T) {
	s := newTestStore(t)
	attr := cell.DefaultAttributes()
	st := screen.NewTerminalState(screen.Source{
		Width:  10,
		Height: 1,
		Scrollback: []*screen.DisplayLine{
			screen.NewDisplayLineFromText("first scrolled line", attr),
			screen.NewDisplayLineFromText("second scrolled line", attr),
		},
		Display: []*screen.DisplayLine{
			screen.NewDisplayLineFromText("still live", attr),
		},
		DefaultAttr: attr,
	})

	if err := s.IndexState(st, 100, time.Now()); err != nil {
		t.Fatalf("failed to index snapshot: %v", err)
	}
	s.Flush()

	results, err := s.Search("scrolled", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both scrollback lines, got %d", len(results))
	}
	// Live display lines are not part of durable history.
	if live, _ := s.Search("still live", 10); len(live) != 0 {
		t.Errorf("live display should not be indexed, got %+v", live)
	}
}
