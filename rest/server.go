package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type RouteInitializer func(router *mux.Router, l logrus.FieldLogger)

type Server struct {
	l        logrus.FieldLogger
	ctx      context.Context
	wg       *sync.WaitGroup
	basePath string
	port     string
	routes   []RouteInitializer
}

func New(l logrus.FieldLogger) *Server {
	return &Server{
		l:        l,
		ctx:      context.Background(),
		wg:       &sync.WaitGroup{},
		basePath: "/",
		port:     "8080",
	}
}

func (s *Server) WithContext(ctx context.Context) *Server {
	s.ctx = ctx
	return s
}

func (s *Server) WithWaitGroup(wg *sync.WaitGroup) *Server {
	s.wg = wg
	return s
}

func (s *Server) SetBasePath(basePath string) *Server {
	s.basePath = basePath
	return s
}

func (s *Server) SetPort(port string) *Server {
	if port != "" {
		s.port = port
	}
	return s
}

func (s *Server) AddRouteInitializer(ri RouteInitializer) *Server {
	s.routes = append(s.routes, ri)
	return s
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	if prefix := strings.TrimSuffix(s.basePath, "/"); prefix != "" {
		router = router.PathPrefix(prefix).Subrouter()
	}
	router.Use(CommonHeader)
	for _, ri := range s.routes {
		ri(router, s.l)
	}
	return router
}

// Run starts serving in the background and stops when the context is done.
func (s *Server) Run() {
	hs := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.l.Infof("Starting server on port [%s].", s.port)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.l.WithError(err).Errorf("Error while serving.")
		}
	}()

	go func() {
		<-s.ctx.Done()
		s.l.Infof("Shutting down server on port [%s].", s.port)
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(sctx); err != nil {
			s.l.WithError(err).Errorf("Error shutting down server.")
		}
	}()
}

func CommonHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
