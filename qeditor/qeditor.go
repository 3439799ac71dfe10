// Copyright © 2016, The T Authors.

// Package qeditor serves many independent edit.Documents to remote batch
// clients over HTTP, and streams a WebSocket notification per document on
// every mutation that is actually drained and applied.
//
// This is a multiplexer over independent documents, not a door into
// shared-document concurrency: each document is wrapped in its own
// mutex, taken only around the dispatch of a single command, exactly as
// each document in the design this package implements is single-writer.
// See the design document's §12 for the route table this package
// implements.
package qeditor

import (
	"io"
	"sync"

	"github.com/eaburns/qed/edit"
	"github.com/google/uuid"
)

// A Server hosts a registry of documents, each identified by a UUID.
// Minting ids with github.com/google/uuid, rather than the server-local
// incrementing integer the original HTTP editor used, lets a Server be
// restarted behind a load balancer without risking an id collision with
// a document a clients still remembers from before the restart.
type Server struct {
	mu           sync.Mutex
	docs         map[string]*document
	maxDocuments int
	logw         io.Writer
}

// NewServer returns a new, empty Server configured by cfg.
func NewServer(cfg Config) *Server {
	return &Server{
		docs:         make(map[string]*document),
		maxDocuments: cfg.MaxDocuments,
	}
}

// SetLogOutput directs a log line for every command applied through
// RegisterHandlers's command route to w. Passing nil (the default)
// disables command logging.
func (s *Server) SetLogOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logw = w
}

func (s *Server) logOutput() io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logw
}

// document pairs one edit.Document with the lock that serializes access
// to it and the set of change subscribers currently watching it.
type document struct {
	mu   sync.Mutex
	id   string
	doc  *edit.Document
	subs map[chan ChangeEvent]struct{}
	seq  int
}

// NewDocument creates a new, empty document and returns its id. It
// reports false without creating a document when the server is already
// at its configured MaxDocuments.
func (s *Server) NewDocument() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxDocuments > 0 && len(s.docs) >= s.maxDocuments {
		return "", false
	}

	id := uuid.NewString()
	s.docs[id] = &document{
		id:   id,
		doc:  edit.NewDocument(),
		subs: make(map[chan ChangeEvent]struct{}),
	}
	return id, true
}

// DocumentIDs returns the ids of every currently live document.
func (s *Server) DocumentIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	return ids
}

// CloseDocument removes the document with the given id. It reports
// whether a document with that id existed.
func (s *Server) CloseDocument(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return false
	}
	d.mu.Lock()
	for ch := range d.subs {
		delete(d.subs, ch)
		close(ch)
	}
	d.mu.Unlock()
	delete(s.docs, id)
	return true
}

func (s *Server) document(id string) (*document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	return d, ok
}

// subscribe registers a channel to receive ChangeEvents for d. The
// returned function unregisters it.
func (d *document) subscribe() (<-chan ChangeEvent, func()) {
	ch := make(chan ChangeEvent, 16)
	d.mu.Lock()
	d.subs[ch] = struct{}{}
	d.mu.Unlock()
	return ch, func() {
		d.mu.Lock()
		if _, ok := d.subs[ch]; ok {
			delete(d.subs, ch)
			close(ch)
		}
		d.mu.Unlock()
	}
}

// publish fans ev out to every current subscriber without blocking: a
// slow or absent reader drops events rather than stalling a command.
func (d *document) publish(ev ChangeEvent) {
	for ch := range d.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
