package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/reqHandler"
	"github.com/err0r500/go-ldp-server/store"
	"github.com/err0r500/go-ldp-server/uc"
)

const exposedHeaders = "Location, Link, Vary, Last-Modified, ETag, Content-Length, Content-Type, Accept-Patch, Accept-Post, Accept-Ranges, Allow, Memento-Datetime, Preference-Applied"

// Server routes every request of the partition to the verb handlers
type Server struct {
	interactor uc.Interactor
	resources  uc.ResourceService
	parser     reqHandler.Parser
	logger     uc.Logger
	router     chi.Router
}

// New builds the server and its router
func New(config *domain.ServerConfig, resources uc.ResourceService, interactor uc.Interactor, sessions reqHandler.SessionResolver, logger uc.Logger) *Server {
	s := &Server{
		interactor: interactor,
		resources:  resources,
		parser: reqHandler.Parser{
			BaseURL:   config.BaseURL,
			Partition: config.Partition,
			Sessions:  sessions,
		},
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if config.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	if config.RequestTimeout > 0 {
		r.Use(middleware.Timeout(config.RequestTimeout))
	}
	r.Use(cors)

	r.Handle("/", http.HandlerFunc(s.handle))
	r.Handle("/*", http.HandlerFunc(s.handle))
	r.MethodNotAllowed(methodNotAllowed)
	s.router = r
	return s
}

// ServeHTTP handles the response
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); len(origin) > 0 {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add(constant.HVary, "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Expose-Headers", exposedHeaders)
		w.Header().Set("Access-Control-Max-Age", "1728000")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := s.parser.Parse(r)
	if err != nil {
		s.logger.Debug("refusing request", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res, err := s.load(ctx, req)
	if err != nil {
		s.logger.Error("cannot load resource", "identifier", req.Identifier, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := reqHandler.Write(ctx, w, r, s.dispatch(ctx, req, res)); err != nil {
		s.logger.Error("cannot write response", "identifier", req.Identifier, "err", err)
	}
}

// load returns the target of req, nil when it does not exist
func (s *Server) load(ctx context.Context, req *uc.Request) (*domain.Resource, error) {
	var (
		res *domain.Resource
		err error
	)
	if req.Version != nil {
		res, err = s.resources.GetVersion(ctx, req.Identifier, *req.Version)
	} else {
		res, err = s.resources.Get(ctx, req.Identifier)
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return res, err
}

func (s *Server) dispatch(ctx context.Context, req *uc.Request, res *domain.Resource) *uc.Response {
	if req.Version != nil && res == nil {
		return uc.NewResponse().Respond(http.StatusNotFound)
	}

	switch req.Method {
	case http.MethodOptions:
		return s.interactor.Options(ctx, req, res)
	case http.MethodGet, http.MethodHead:
		return s.interactor.GetHead(ctx, req, res)
	case http.MethodPatch:
		return s.interactor.Patch(ctx, req, res)
	case http.MethodPost:
		return s.interactor.Post(ctx, req, res)
	case http.MethodPut:
		return s.interactor.Put(ctx, req, res)
	case http.MethodDelete:
		return s.interactor.Delete(ctx, req, res)
	default:
		return uc.NewResponse().
			HeaderSet(constant.HAllow, strings.Join(constant.AllMethods(), ",")).
			Respond(http.StatusMethodNotAllowed)
	}
}

// methodNotAllowed answers the methods the router does not know
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(constant.HAllow, strings.Join(constant.AllMethods(), ","))
	w.WriteHeader(http.StatusMethodNotAllowed)
}
