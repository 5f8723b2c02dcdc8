package server

import (
	"net/http"

	"github.com/percal/percal/internal/utils"
	"github.com/percal/percal/pkg/catalog"
)

// Server exposes the event catalogue and the calendar grid over a
// small JSON API. The catalogue is immutable after construction, so
// handlers share it without locking.
type Server struct {
	Catalog  *catalog.Catalog
	Username string
	Password string
}

func New(c *catalog.Catalog, user, pass string) *Server {
	return &Server{
		Catalog:  c,
		Username: user,
		Password: pass,
	}
}

func (s *Server) Start(addr string) error {
	utils.Log.Info("Starting server on ", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler builds the route table. Split from Start so tests can drive
// it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/eras", s.basicAuth(s.handleEras))
	mux.HandleFunc("GET /api/categories", s.basicAuth(s.handleCategories))
	mux.HandleFunc("GET /api/events", s.basicAuth(s.handleEvents))
	mux.HandleFunc("GET /api/search", s.basicAuth(s.handleSearch))
	mux.HandleFunc("GET /api/calendar", s.basicAuth(s.handleCalendar))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
