package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/mindbridge/campus-care/backend/internal/analysis/reply"
	"github.com/mindbridge/campus-care/backend/internal/config"
	"github.com/mindbridge/campus-care/backend/internal/handler"
	"github.com/mindbridge/campus-care/backend/internal/logging"
	bookingModel "github.com/mindbridge/campus-care/backend/internal/model/booking"
	"github.com/mindbridge/campus-care/backend/internal/model/counselor"
	forumModel "github.com/mindbridge/campus-care/backend/internal/model/forum"
	"github.com/mindbridge/campus-care/backend/internal/model/resource"
	"github.com/mindbridge/campus-care/backend/internal/observability/metrics"
	"github.com/mindbridge/campus-care/backend/internal/service/analytics"
	"github.com/mindbridge/campus-care/backend/internal/service/booking"
	"github.com/mindbridge/campus-care/backend/internal/service/chat"
	"github.com/mindbridge/campus-care/backend/internal/service/forum"
	"github.com/mindbridge/campus-care/backend/internal/service/mood"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is optional; the process environment always wins
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment", zap.Error(envErr))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	tracker := analytics.NewTracker(metrics.New(registry))

	pipeline, err := chat.NewPipeline(ctx, reply.MustDefault())
	if err != nil {
		logger.Fatal("failed to compile reply pipeline", zap.Error(err))
	}
	chatService := chat.NewService(pipeline, chat.Options{
		ReplyDelay: cfg.Chat.ReplyDelay,
		Logger:     logger.Named("chat"),
		Tracker:    tracker,
	})

	counselors := counselor.NewMemoryStore(counselor.Seed())
	slots := bookingModel.NewSlotCatalog(bookingModel.SeedSlots())
	bookingService := booking.NewService(counselors, slots, booking.Options{
		Location: cfg.Booking.Location,
		Logger:   logger.Named("booking"),
		Tracker:  tracker,
	})
	bookingService.Subscribe(func(c bookingModel.Confirmation) {
		logger.Info("appointment booked",
			zap.String("booking_id", c.ID),
			zap.String("date", c.Summary.Date),
			zap.String("time", c.Summary.Time),
		)
	})

	moodService := mood.NewService(tracker, logger.Named("mood"))
	forumService := forum.NewService(forumModel.NewStore(forumModel.Seed()), logger.Named("forum"))

	router := handler.NewRouter(handler.Deps{
		Logger:         logger.Named("http"),
		Counselors:     counselors,
		Slots:          slots,
		Resources:      resource.NewStore(resource.Seed()),
		ChatSvc:        chatService,
		BookingSvc:     bookingService,
		MoodSvc:        moodService,
		ForumSvc:       forumService,
		Tracker:        tracker,
		Gatherer:       registry,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	startServer(ctx, logger, cfg.Server, router)
}

func startServer(ctx context.Context, logger *zap.Logger, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("MindBridge backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv, serverCfg.ShutdownTimeout); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
