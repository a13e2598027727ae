package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/NoriFarm_Go/internal/cart"
	"github.com/osse101/NoriFarm_Go/internal/catalog"
	"github.com/osse101/NoriFarm_Go/internal/crop"
	"github.com/osse101/NoriFarm_Go/internal/handler"
	"github.com/osse101/NoriFarm_Go/internal/images"
	"github.com/osse101/NoriFarm_Go/internal/logger"
	"github.com/osse101/NoriFarm_Go/internal/matcher"
	"github.com/osse101/NoriFarm_Go/internal/metrics"
	"github.com/osse101/NoriFarm_Go/internal/sse"
)

// Services are the domain services exposed over HTTP
type Services struct {
	Crops   crop.Service
	Matcher matcher.Service
	Catalog catalog.Service
	Cart    cart.Service
	Images  images.Store
}

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string

	// UploadDir is served read-only under UploadBaseURL when both are set
	UploadDir      string
	UploadBaseURL  string
	MaxUploadBytes int64

	ReadyChecks map[string]handler.HealthChecker

	// Feed enables /api/v1/events when non-nil
	Feed *sse.Hub
}

// Server is the NoriFarm HTTP API
type Server struct {
	httpServer *http.Server
}

// NewServer wires routes and middleware
func NewServer(opts Options, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router without binding a port
func NewRouter(opts Options, svcs Services) http.Handler {
	handler.InitValidator()
	r := chi.NewRouter()

	// outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.ReadyChecks))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	if opts.UploadDir != "" && strings.HasPrefix(opts.UploadBaseURL, "/") {
		prefix := strings.TrimSuffix(opts.UploadBaseURL, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, noDirListing(http.FileServer(http.Dir(opts.UploadDir)))))
	}

	cropHandler := handler.NewCropHandler(svcs.Crops)
	matchHandler := handler.NewMatchHandler(svcs.Matcher)
	productHandler := handler.NewProductHandler(svcs.Catalog)
	cartHandler := handler.NewCartHandler(svcs.Cart)
	uploadHandler := handler.NewUploadHandler(svcs.Images, opts.MaxUploadBytes)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimitMiddleware(MaxJSONBodyBytes))

			r.Route("/crops", func(r chi.Router) {
				r.Get("/", cropHandler.HandleListCrops)
				r.Post("/", cropHandler.HandlePlantCrop)
				r.Route("/{cropID}", func(r chi.Router) {
					r.Get("/", cropHandler.HandleGetCrop)
					r.Put("/", cropHandler.HandleEditCrop)
					r.Delete("/", cropHandler.HandleRemoveCrop)
					r.Post("/harvest", cropHandler.HandleHarvestCrop)
				})
			})

			r.Post("/match", matchHandler.HandleMatchPost)
			r.Get("/match", matchHandler.HandleMatchGet)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.HandleSearchProducts)
				r.Get("/recommendations", productHandler.HandleRecommendations)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.HandleGetCart)
				r.Delete("/", cartHandler.HandleClearCart)
				r.Post("/items", cartHandler.HandleAddItem)
				r.Put("/items/{productID}", cartHandler.HandleUpdateItem)
				r.Delete("/items/{productID}", cartHandler.HandleRemoveItem)
			})
		})

		// enforces its own, larger body limit
		r.Post("/uploads/images", uploadHandler.HandleUploadImage)

		if opts.Feed != nil {
			r.Get("/events", sse.Handler(opts.Feed))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// noDirListing hides directory indexes of the upload dir
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working behind the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
