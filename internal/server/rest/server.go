// Package rest exposes the TaskVault service over HTTP: routing, bearer-token
// authentication, and translation of service errors into response classes.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/logging"
	"github.com/dmitrijs2005/taskvault/internal/server/auth"
	"github.com/dmitrijs2005/taskvault/internal/server/config"
	"github.com/dmitrijs2005/taskvault/internal/server/services"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const apiVersion = "1.0.0"

type RESTServer struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	tasks          *services.TaskService
	tokens         *auth.TokenManager
	allowedOrigins []string
}

func NewRESTServer(cfg *config.Config, l logging.Logger, us *services.UserService, ts *services.TaskService, tokens *auth.TokenManager) *RESTServer {
	return &RESTServer{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "rest_server"),
		users:          us,
		tasks:          ts,
		tokens:         tokens,
		allowedOrigins: cfg.AllowedOrigins,
	}
}

// Handler builds the full HTTP handler: routes, auth middleware on the task
// subtree, request logging, and CORS.
func (s *RESTServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/", s.rootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/register", s.registerHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.loginHandler).Methods(http.MethodPost)

	// Every task route sits behind the access guard; there is no anonymous
	// task access.
	tasks := api.PathPrefix("/tasks").Subrouter()
	tasks.Use(s.authMiddleware)
	tasks.HandleFunc("", s.listTasksHandler).Methods(http.MethodGet)
	tasks.HandleFunc("", s.createTaskHandler).Methods(http.MethodPost)
	tasks.HandleFunc("/{id}", s.getTaskHandler).Methods(http.MethodGet)
	tasks.HandleFunc("/{id}", s.updateTaskHandler).Methods(http.MethodPut)
	tasks.HandleFunc("/{id}", s.deleteTaskHandler).Methods(http.MethodDelete)

	headers := gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	origins := gorillahandlers.AllowedOrigins(s.allowedOrigins)

	return gorillahandlers.CORS(headers, methods, origins)(r)
}

// Run serves HTTP until ctx is canceled, then shuts the server down
// gracefully.
func (s *RESTServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
