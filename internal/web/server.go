// Package web serves articles over HTTP. Handlers are mounted on the patterns
// of the helper registry's route table, so links rendered by performers always
// point at a served route.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/performer/pkg/article"
	"github.com/aretw0/performer/pkg/bootstrap"
	"github.com/aretw0/performer/pkg/core"
	"github.com/aretw0/performer/pkg/helper"
	"github.com/aretw0/performer/pkg/performer"
)

// Articles is the read side of article.Store.
type Articles interface {
	List(ctx context.Context) ([]*article.Article, error)
	Get(ctx context.Context, id string) (*article.Article, error)
}

// Server renders articles through their performers.
type Server struct {
	articles Articles
	wiring   *bootstrap.Wiring
	logger   *slog.Logger
}

// NewServer creates a Server. wiring must be Wired.
func NewServer(articles Articles, wiring *bootstrap.Wiring, logger *slog.Logger) (*Server, error) {
	if wiring == nil || wiring.State() != bootstrap.Wired {
		return nil, performer.ErrNotWired
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{articles: articles, wiring: wiring, logger: logger}, nil
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	routes := make(map[string]helper.Route)
	for _, route := range s.wiring.Registry().Routes() {
		routes[route.Name] = route
	}

	if index, ok := routes["articles"]; ok {
		r.Get(index.Pattern, s.listArticles)
		if root, ok := routes["root"]; ok && root.Pattern != index.Pattern {
			r.Get(root.Pattern, http.RedirectHandler(index.Pattern, http.StatusFound).ServeHTTP)
		}
	}
	if show, ok := routes["article"]; ok && len(show.Params()) == 1 {
		param := show.Params()[0]
		r.Get(show.Pattern, func(w http.ResponseWriter, req *http.Request) {
			s.showArticle(w, req, chi.URLParam(req, param))
		})
	}
	return r
}

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.articles.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	views := make([]performer.View, 0, len(articles))
	for _, a := range articles {
		v, err := s.wiring.Article(a).View()
		if err != nil {
			s.fail(w, r, err)
			return
		}
		views = append(views, v)
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, views)
		return
	}

	items := make([]listItem, 0, len(views))
	for _, v := range views {
		link := template.HTMLEscapeString(v.Name)
		if v.Path != "" {
			rendered, err := s.wiring.Registry().RenderLink(v.Name, v.Path)
			if err != nil {
				s.fail(w, r, err)
				return
			}
			link = rendered
		}
		items = append(items, listItem{Link: template.HTML(link), View: v})
	}

	price, err := s.wiring.ArticleClass().ArticlesPrice()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "list", listPage{Items: items, Price: price})
}

func (s *Server) showArticle(w http.ResponseWriter, r *http.Request, param string) {
	a, err := s.articles.Get(r.Context(), article.IDFromParam(param))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	v, err := s.wiring.Article(a).View()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, v)
		return
	}
	s.render(w, r, "show", showPage{View: v, Back: template.HTML(v.ArticlesLink)})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var b strings.Builder
	if err := pages.ExecuteTemplate(&b, name, data); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, b.String())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, core.ErrNotFound) {
		status = http.StatusNotFound
	} else {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	if wantsJSON(r) {
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	http.Error(w, http.StatusText(status), status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func wantsJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == "json" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, `{"error":%q}`, err.Error())
	}
}
