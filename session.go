package formfill

import (
	"context"
	"sync"
)

// Session binds an Extractor to the FieldSet of one live form. It enforces
// the form-session contract: at most one extraction in flight, and once the
// form is torn down a late gateway result is discarded on arrival instead
// of applied.
type Session struct {
	mu       sync.Mutex
	fields   FieldSet
	inFlight bool
	closed   bool
	ext      *Extractor
}

// NewSession snapshots the fields for the lifetime of the form. Later
// mutations of the caller's slice do not leak into the session.
func NewSession(ext *Extractor, fields FieldSet) *Session {
	return &Session{ext: ext, fields: fields.Clone()}
}

// Fields returns a copy of the current field state.
func (s *Session) Fields() FieldSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields.Clone()
}

// Extract runs one cycle against the session's fields and, on success,
// atomically replaces them with the merged result. It returns the change
// summary. A second call while one is outstanding fails with
// ErrExtractionInFlight; after Close every call, and any result still in
// flight, fails with ErrSessionClosed.
func (s *Session) Extract(ctx context.Context, utterance string, optFns ...func(*Options)) ([]string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrExtractionInFlight
	}
	s.inFlight = true
	snapshot := s.fields
	s.mu.Unlock()

	// The gateway call happens outside the lock; Close can win the race.
	res, err := s.ext.Extract(ctx, utterance, snapshot, optFns...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.closed {
		return nil, ErrSessionClosed
	}
	if err != nil {
		return nil, err
	}
	s.fields = res.Fields
	return res.Changed, nil
}

// Close tears the session down. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
