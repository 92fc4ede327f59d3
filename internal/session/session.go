// Package session holds the state of one merge workspace: the ordered list of
// uploaded files and the last successful merge result.
//
// Every list operation is synchronous and in-memory. Merges are serialised per
// session; a merge started while another one runs fails with
// ErrMergeInProgress instead of waiting. A merge works on a snapshot of the
// list taken when it starts, so the list may be edited meanwhile; clearing the
// session discards the running merge's result.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"nupmerge/internal/imposition"
)

var (
	ErrMergeInProgress    = errors.New("session: a merge is already running")
	ErrMergeDiscarded     = errors.New("session: cleared while merging, result discarded")
	ErrIndexOutOfRange    = errors.New("session: file index out of range")
	ErrInvalidPermutation = errors.New("session: order is not a permutation of the file list")
)

// Merger is satisfied by *imposition.Engine.
type Merger interface {
	Merge(ctx context.Context, files []imposition.SourceFile, grid imposition.GridConfig, paper imposition.PaperConfig, progress imposition.Progress) (*imposition.MergedDocument, error)
}

// PublishFunc stores a finished merge. It runs before the result replaces the
// session's previous one, and an error keeps the previous result.
type PublishFunc func(*imposition.MergedDocument) error

type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	files      []imposition.SourceFile
	merged     *imposition.MergedDocument
	updatedAt  time.Time
	generation uint64 // bumped by Clear

	merging sync.Mutex
}

func New() *Session {
	now := time.Now()
	return &Session{ID: NewID(), CreatedAt: now, updatedAt: now}
}

func (s *Session) touch() { s.updatedAt = time.Now() }

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Files returns a copy of the current list.
func (s *Session) Files() []imposition.SourceFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]imposition.SourceFile(nil), s.files...)
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

func (s *Session) Append(files ...imposition.SourceFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, files...)
	s.touch()
}

// AddUploads appends every PDF upload and reports the names of the rest.
func (s *Session) AddUploads(uploads []Upload) (added []imposition.SourceFile, rejected []string, err error) {
	for _, u := range uploads {
		if !u.IsPDF() || len(u.Data) == 0 {
			rejected = append(rejected, u.Name)
			continue
		}
		added = append(added, NewSourceFile(u))
	}
	if len(added) == 0 {
		return nil, rejected, ErrNoPDFFiles
	}
	s.Append(added...)
	return added, rejected, nil
}

// MoveUp swaps file i with its predecessor. No-op at the top or out of range.
func (s *Session) MoveUp(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i <= 0 || i >= len(s.files) {
		return
	}
	s.files[i-1], s.files[i] = s.files[i], s.files[i-1]
	s.touch()
}

// MoveDown swaps file i with its successor. No-op at the bottom or out of range.
func (s *Session) MoveDown(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.files)-1 {
		return
	}
	s.files[i], s.files[i+1] = s.files[i+1], s.files[i]
	s.touch()
}

// Move takes file from and inserts it at index to, shifting the files in
// between, like dropping a dragged list item.
func (s *Session) Move(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.files)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d with %d files", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	f := s.files[from]
	s.files = append(s.files[:from], s.files[from+1:]...)
	s.files = append(s.files[:to], append([]imposition.SourceFile{f}, s.files[to:]...)...)
	s.touch()
	return nil
}

func (s *Session) Remove(i int) (imposition.SourceFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.files) {
		return imposition.SourceFile{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.files))
	}
	removed := s.files[i]
	s.files = append(s.files[:i], s.files[i+1:]...)
	s.touch()
	return removed, nil
}

// ReorderTo rearranges the list so that position k holds the file previously
// at order[k].
func (s *Session) ReorderTo(order []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.files)
	if len(order) != n {
		return fmt.Errorf("%w: got %d indices for %d files", ErrInvalidPermutation, len(order), n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return fmt.Errorf("%w: %v", ErrInvalidPermutation, order)
		}
		seen[idx] = true
	}

	reordered := make([]imposition.SourceFile, n)
	for k, idx := range order {
		reordered[k] = s.files[idx]
	}
	s.files = reordered
	s.touch()
	return nil
}

// Clear drops every file and the last merge result.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = nil
	s.merged = nil
	s.generation++
	s.touch()
}

func (s *Session) Merged() *imposition.MergedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.merged
}

// Merge runs m over a snapshot of the list. The previous result is only
// replaced once the new merge has succeeded.
func (s *Session) Merge(ctx context.Context, m Merger, grid imposition.GridConfig, paper imposition.PaperConfig, progress imposition.Progress) (*imposition.MergedDocument, error) {
	return s.MergeAndPublish(ctx, m, grid, paper, progress, nil)
}

// MergeAndPublish is Merge with publish called on the result while the
// session is locked. If the session was cleared after the merge started the
// result is dropped with ErrMergeDiscarded and publish is not called.
func (s *Session) MergeAndPublish(ctx context.Context, m Merger, grid imposition.GridConfig, paper imposition.PaperConfig, progress imposition.Progress, publish PublishFunc) (*imposition.MergedDocument, error) {
	if !s.merging.TryLock() {
		return nil, ErrMergeInProgress
	}
	defer s.merging.Unlock()

	s.mu.Lock()
	files := append([]imposition.SourceFile(nil), s.files...)
	generation := s.generation
	s.mu.Unlock()

	merged, err := m.Merge(ctx, files, grid, paper, progress)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		return nil, ErrMergeDiscarded
	}
	if publish != nil {
		if err := publish(merged); err != nil {
			return nil, err
		}
	}
	s.merged = merged
	s.touch()
	return merged, nil
}
