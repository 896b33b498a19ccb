package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/jitter/internal/handler"
	"github.com/dukerupert/jitter/internal/middleware"
	"github.com/dukerupert/jitter/internal/tracker"
	ws "github.com/dukerupert/jitter/internal/websocket"
	"github.com/go-chi/cors"
)

const (
	writeLimit  = 30
	writeWindow = time.Minute
)

type Options struct {
	// CORSOrigins are full origins, e.g. "http://localhost:5173". They also
	// gate websocket upgrades.
	CORSOrigins []string
	// TrustProxy keys the write limiter on X-Real-IP / X-Forwarded-For.
	// Enable only behind a reverse proxy that sets those headers.
	TrustProxy bool
}

type Server struct {
	hub          *ws.Hub
	brandH       *handler.BrandHandler
	drinkH       *handler.DrinkHandler
	consumptionH *handler.ConsumptionHandler
	statsH       *handler.StatsHandler
	healthH      *handler.HealthHandler
	rateLimiter  *middleware.RateLimiter
	origins      []string
	trustProxy   bool
	logger       *slog.Logger
}

func New(svc *tracker.Service, opts Options, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	return &Server{
		hub:          hub,
		brandH:       handler.NewBrandHandler(svc, hub, logger.With("component", "brand")),
		drinkH:       handler.NewDrinkHandler(svc, hub, logger.With("component", "drink")),
		consumptionH: handler.NewConsumptionHandler(svc, hub, logger.With("component", "consumption")),
		statsH:       handler.NewStatsHandler(svc, logger.With("component", "stats")),
		healthH:      handler.NewHealthHandler(svc, logger.With("component", "health")),
		rateLimiter:  middleware.NewRateLimiter(writeLimit, writeWindow),
		origins:      opts.CORSOrigins,
		trustProxy:   opts.TrustProxy,
		logger:       logger,
	}
}

// Hub returns the live feed hub so it can be closed on shutdown.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// RateLimiter returns the write limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.healthH.Root)
	mux.HandleFunc("GET /api/health", s.healthH.Health)

	mux.HandleFunc("GET /api/brands", s.brandH.List)
	mux.HandleFunc("GET /api/brands/{id}", s.brandH.Get)
	mux.HandleFunc("POST /api/brands", s.brandH.Create)

	mux.HandleFunc("GET /api/drinks", s.drinkH.List)
	mux.HandleFunc("GET /api/drinks/{id}", s.drinkH.Get)
	mux.HandleFunc("POST /api/drinks", s.drinkH.Create)

	mux.HandleFunc("GET /api/consumptions", s.consumptionH.List)
	mux.HandleFunc("POST /api/consumptions", s.consumptionH.Create)

	mux.HandleFunc("GET /api/stats/all-time", s.statsH.AllTime)
	mux.HandleFunc("GET /api/stats/stacked-chart", s.statsH.StackedChart)

	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.origins, s.logger.With("component", "websocket")))

	var h http.Handler = mux
	h = middleware.LimitWrites(s.rateLimiter, middleware.ClientKey(s.trustProxy))(h)
	h = cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})(h)
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}
