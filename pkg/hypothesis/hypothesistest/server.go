// Package hypothesistest provides a fake in-memory Hypothesis API server
// for testing. It speaks the JSON REST surface the client binds to
// (annotations, groups, profile) on top of httptest, stores entities in
// memory, and can inject failures: a forced error response for a given
// operation, or a garbage body that matches no known shape.
//
// It is a test double, not a faithful reimplementation: search supports
// only the filters the client tests exercise (group, search_after, order,
// limit).
package hypothesistest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/out-of-cheese-error/go-hypothesis/pkg/hypothesis"
)

// Failure is a forced error response for one operation.
type Failure struct {
	StatusCode int
	Status     string
	Reason     string
}

// Server is a fake Hypothesis API server.
type Server struct {
	mu          sync.Mutex
	annotations map[string]*hypothesis.Annotation
	groups      map[string]*hypothesis.Group
	members     map[string][]hypothesis.Member
	failures    map[string]Failure
	garbage     map[string]bool

	// Username and Authority identify the simulated authenticated user.
	Username  string
	Authority string

	httpServer *httptest.Server
}

// NewServer starts a fake server. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		annotations: make(map[string]*hypothesis.Annotation),
		groups:      make(map[string]*hypothesis.Group),
		members:     make(map[string][]hypothesis.Member),
		failures:    make(map[string]Failure),
		garbage:     make(map[string]bool),
		Username:    "testuser",
		Authority:   hypothesis.DefaultAuthority,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /annotations", s.createAnnotation)
	mux.HandleFunc("GET /search", s.search)
	mux.HandleFunc("GET /annotations/{id}", s.fetchAnnotation)
	mux.HandleFunc("PATCH /annotations/{id}", s.updateAnnotation)
	mux.HandleFunc("DELETE /annotations/{id}", s.deleteAnnotation)
	mux.HandleFunc("PUT /annotations/{id}/flag", s.flagAnnotation)
	mux.HandleFunc("PUT /annotations/{id}/hide", s.setHidden(true))
	mux.HandleFunc("DELETE /annotations/{id}/hide", s.setHidden(false))
	mux.HandleFunc("GET /groups", s.listGroups)
	mux.HandleFunc("POST /groups", s.createGroup)
	mux.HandleFunc("GET /groups/{id}", s.fetchGroup)
	mux.HandleFunc("PATCH /groups/{id}", s.updateGroup)
	mux.HandleFunc("GET /groups/{id}/members", s.groupMembers)
	mux.HandleFunc("DELETE /groups/{id}/members/me", s.leaveGroup)
	mux.HandleFunc("GET /profile", s.profile)
	mux.HandleFunc("GET /profile/groups", s.profileGroups)
	s.httpServer = httptest.NewServer(s.intercept(mux))
	return s
}

// URL returns the server's base URL, suitable for Config.BaseURL.
func (s *Server) URL() string { return s.httpServer.URL }

// Close shuts the server down.
func (s *Server) Close() { s.httpServer.Close() }

// User returns the simulated authenticated account ID.
func (s *Server) User() hypothesis.AccountID {
	return hypothesis.MakeAccountID(s.Username, s.Authority)
}

// FailWith forces the given operation ("POST /annotations", ...) to answer
// with an error body from then on.
func (s *Server) FailWith(op string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = f
}

// GarbageBody forces the given operation to answer 200 with a body that is
// neither the success nor the error shape.
func (s *Server) GarbageBody(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.garbage[op] = true
}

// AddAnnotation seeds an annotation into the store.
func (s *Server) AddAnnotation(a *hypothesis.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.annotations[a.ID] = a
}

// AddGroup seeds a group and its member list into the store.
func (s *Server) AddGroup(g *hypothesis.Group, members []hypothesis.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID] = g
	s.members[g.ID] = members
}

// AnnotationCount reports how many annotations the store holds.
func (s *Server) AnnotationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.annotations)
}

// intercept applies auth checks and failure injection before routing.
func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		op := r.Method + " " + r.URL.Path
		s.mu.Lock()
		garbage := s.garbage[op]
		failure, failed := s.failures[op]
		s.mu.Unlock()
		if garbage {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "<html>definitely not json</html>")
			return
		}
		if failed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(failure.StatusCode)
			json.NewEncoder(w).Encode(map[string]string{
				"status": failure.Status,
				"reason": failure.Reason,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, code int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": "failure", "reason": reason})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) createAnnotation(w http.ResponseWriter, r *http.Request) {
	var in hypothesis.InputAnnotation
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.URI == "" {
		writeError(w, http.StatusBadRequest, "uri is required")
		return
	}
	now := time.Now().UTC()
	group := in.Group
	if group == "" {
		group = "__world__"
	}
	a := &hypothesis.Annotation{
		ID:      uuid.NewString(),
		Created: now,
		Updated: now,
		User:    s.User(),
		URI:     in.URI,
		Text:    in.Text,
		Tags:    in.Tags,
		Group:   group,
		Permissions: hypothesis.Permissions{
			Read:   []string{"group:" + group},
			Delete: []string{string(s.User())},
			Admin:  []string{string(s.User())},
			Update: []string{string(s.User())},
		},
		Links:      map[string]string{"json": "/annotations/"},
		Document:   in.Document,
		References: in.References,
	}
	if in.Target != nil {
		a.Target = []hypothesis.Target{*in.Target}
	}
	s.mu.Lock()
	s.annotations[a.ID] = a
	s.mu.Unlock()
	writeJSON(w, a)
}

func (s *Server) fetchAnnotation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	a, ok := s.annotations[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "annotation not found")
		return
	}
	writeJSON(w, a)
}

func (s *Server) updateAnnotation(w http.ResponseWriter, r *http.Request) {
	var in hypothesis.InputAnnotation
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.annotations[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "annotation not found")
		return
	}
	in.ApplyTo(a)
	a.Updated = time.Now().UTC()
	writeJSON(w, a)
}

func (s *Server) deleteAnnotation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	_, ok := s.annotations[id]
	delete(s.annotations, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "annotation not found")
		return
	}
	writeJSON(w, map[string]any{"id": id, "deleted": true})
}

func (s *Server) flagAnnotation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.annotations[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "annotation not found")
		return
	}
	a.Flagged = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setHidden(hidden bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		a, ok := s.annotations[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "annotation not found")
			return
		}
		a.Hidden = hidden
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.mu.Lock()
	rows := make([]hypothesis.Annotation, 0, len(s.annotations))
	for _, a := range s.annotations {
		rows = append(rows, *a)
	}
	s.mu.Unlock()

	if groups := q["group"]; len(groups) > 0 {
		rows = filterAnnotations(rows, func(a hypothesis.Annotation) bool {
			for _, g := range groups {
				if a.Group == g {
					return true
				}
			}
			return false
		})
	}
	if uri := q.Get("uri"); uri != "" {
		rows = filterAnnotations(rows, func(a hypothesis.Annotation) bool { return a.URI == uri })
	}

	asc := q.Get("order") == "asc"
	sort.Slice(rows, func(i, j int) bool {
		if asc {
			return rows[i].Updated.Before(rows[j].Updated)
		}
		return rows[i].Updated.After(rows[j].Updated)
	})

	if after := q.Get("search_after"); after != "" {
		cursor, err := time.Parse(time.RFC3339Nano, after)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid search_after")
			return
		}
		rows = filterAnnotations(rows, func(a hypothesis.Annotation) bool {
			if asc {
				return a.Updated.After(cursor)
			}
			return a.Updated.Before(cursor)
		})
	}

	limit := 20
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 200 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	total := len(rows)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	writeJSON(w, map[string]any{"rows": rows, "total": total})
}

func filterAnnotations(rows []hypothesis.Annotation, keep func(hypothesis.Annotation) bool) []hypothesis.Annotation {
	out := rows[:0]
	for _, a := range rows {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*hypothesis.Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, out)
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	g := &hypothesis.Group{
		ID:     uuid.NewString()[:8],
		Name:   payload.Name,
		Type:   hypothesis.GroupPrivate,
		Scoped: false,
	}
	s.mu.Lock()
	s.groups[g.ID] = g
	s.members[g.ID] = []hypothesis.Member{{
		Authority: s.Authority,
		Username:  s.Username,
		UserID:    string(s.User()),
	}}
	s.mu.Unlock()
	writeJSON(w, g)
}

func (s *Server) fetchGroup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g, ok := s.groups[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	writeJSON(w, g)
}

func (s *Server) updateGroup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	if payload.Name != "" {
		g.Name = payload.Name
	}
	writeJSON(w, g)
}

func (s *Server) groupMembers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	members, ok := s.members[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	writeJSON(w, members)
}

func (s *Server) leaveGroup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[id]; !ok {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	kept := s.members[id][:0]
	for _, m := range s.members[id] {
		if m.Username != s.Username {
			kept = append(kept, m)
		}
	}
	s.members[id] = kept
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	user := s.User()
	writeJSON(w, hypothesis.UserProfile{
		Authority:   s.Authority,
		Features:    map[string]bool{"embed_cachebuster": false},
		Preferences: map[string]bool{},
		UserID:      &user,
	})
}

func (s *Server) profileGroups(w http.ResponseWriter, r *http.Request) {
	s.listGroups(w, r)
}
