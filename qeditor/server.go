// Copyright © 2016, The T Authors.

package qeditor

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eaburns/qed/wire"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// RegisterHandlers registers handlers for the following paths and
// methods, mirroring the resource shape (plural collection, singular
// member, one companion stream) the HTTP editor server this package is
// modeled on uses for its own buffers:
//
//	/document			the set of open documents
//		GET	lists document ids
//		PUT	creates a new, empty document
//
//	/document/{id}			one document
//		DELETE	closes the document
//
//	/document/{id}/command		a single command against the document
//		POST	body is one raw wire-format command line, plus
//			payload lines for a change command; the response
//			is a CommandResult
//
//	/document/{id}/changes		a WebSocket of ChangeEvents
//		GET	upgrades the connection and streams one JSON
//			ChangeEvent per drained mutation
func (s *Server) RegisterHandlers(r *mux.Router) {
	r.HandleFunc("/document", s.listDocuments).Methods(http.MethodGet)
	r.HandleFunc("/document", s.newDocument).Methods(http.MethodPut)
	r.HandleFunc("/document/{id}", s.closeDocument).Methods(http.MethodDelete)
	r.HandleFunc("/document/{id}/command", s.command).Methods(http.MethodPost)
	r.HandleFunc("/document/{id}/changes", s.changes).Methods(http.MethodGet)
}

func (s *Server) listDocuments(w http.ResponseWriter, req *http.Request) {
	if err := json.NewEncoder(w).Encode(s.DocumentIDs()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) newDocument(w http.ResponseWriter, req *http.Request) {
	id, ok := s.NewDocument()
	if !ok {
		http.Error(w, "document limit reached", http.StatusServiceUnavailable)
		return
	}
	if err := json.NewEncoder(w).Encode(map[string]string{"id": id}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) closeDocument(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if !s.CloseDocument(id) {
		http.NotFound(w, req)
	}
}

func (s *Server) command(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	d, ok := s.document(id)
	if !ok {
		http.NotFound(w, req)
		return
	}

	dec := wire.NewDecoder(req.Body)
	cmd, err := dec.Next()
	if err != nil && err != io.EOF {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err == io.EOF {
		http.Error(w, "empty command body", http.StatusBadRequest)
		return
	}

	var payload [][]byte
	if cmd.Kind == wire.Change {
		payload, err = dec.ReadPayload(cmd.A2 - cmd.A1 + 1)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	d.mu.Lock()
	result := d.apply(cmd, payload)
	d.mu.Unlock()

	if logw := s.logOutput(); logw != nil {
		fmt.Fprintf(logw, "%s %s %d,%d n=%d\n", id, cmd.Kind, cmd.A1, cmd.A2, cmd.N)
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

const wsWriteTimeout = 10 * time.Second

func (s *Server) changes(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	d, ok := s.document(id)
	if !ok {
		http.NotFound(w, req)
		return
	}

	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch, unsubscribe := d.subscribe()
	defer unsubscribe()

	for ev := range ch {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
	}
}
