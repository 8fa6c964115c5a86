package handler

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/handler/admin"
	bookingHandler "github.com/mindbridge/campus-care/backend/internal/handler/booking"
	"github.com/mindbridge/campus-care/backend/internal/handler/chat"
	counselorHandler "github.com/mindbridge/campus-care/backend/internal/handler/counselor"
	forumHandler "github.com/mindbridge/campus-care/backend/internal/handler/forum"
	moodHandler "github.com/mindbridge/campus-care/backend/internal/handler/mood"
	navigationHandler "github.com/mindbridge/campus-care/backend/internal/handler/navigation"
	resourceHandler "github.com/mindbridge/campus-care/backend/internal/handler/resource"
	"github.com/mindbridge/campus-care/backend/internal/handler/stream"
	middlewarePkg "github.com/mindbridge/campus-care/backend/internal/middleware"
	bookingModel "github.com/mindbridge/campus-care/backend/internal/model/booking"
	counselorModel "github.com/mindbridge/campus-care/backend/internal/model/counselor"
	resourceModel "github.com/mindbridge/campus-care/backend/internal/model/resource"
	"github.com/mindbridge/campus-care/backend/internal/service/analytics"
	bookingService "github.com/mindbridge/campus-care/backend/internal/service/booking"
	chatService "github.com/mindbridge/campus-care/backend/internal/service/chat"
	forumService "github.com/mindbridge/campus-care/backend/internal/service/forum"
	moodService "github.com/mindbridge/campus-care/backend/internal/service/mood"
	"github.com/mindbridge/campus-care/backend/pkg/utils"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Logger *zap.Logger

	Counselors counselorModel.Store
	Slots      *bookingModel.SlotCatalog
	Resources  *resourceModel.Store

	ChatSvc    *chatService.Service
	BookingSvc *bookingService.Service
	MoodSvc    *moodService.Service
	ForumSvc   *forumService.Service
	Tracker    *analytics.Tracker

	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer

	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires HTTP routes to core services.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(d.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(api chi.Router) {
		if d.RateLimitRPS > 0 {
			api.Use(middlewarePkg.NewRateLimiter(d.RateLimitRPS, d.RateLimitBurst).Middleware(logger))
		}
		api.Use(middlewarePkg.Viewer)

		navigationHandler.New().RegisterRoutes(api)
		chat.New(d.ChatSvc, logger).RegisterRoutes(api)
		stream.New(d.ChatSvc, logger).RegisterRoutes(api)
		stream.NewWebSocketHandler(d.ChatSvc, logger, originChecker(d.AllowedOrigins)).RegisterRoutes(api)
		counselorHandler.New(d.Counselors).RegisterRoutes(api)
		bookingHandler.New(d.BookingSvc, d.Slots, logger).RegisterRoutes(api)
		resourceHandler.New(d.Resources).RegisterRoutes(api)
		moodHandler.New(d.MoodSvc).RegisterRoutes(api)
		forumHandler.New(d.ForumSvc, logger).RegisterRoutes(api)
		admin.New(d.Tracker).RegisterRoutes(api)
	})

	return r
}

// originChecker applies the CORS allowlist to websocket upgrades. Requests
// without an Origin header come from non-browser clients and pass.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
