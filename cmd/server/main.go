package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/detailersedge/backend/internal/config"
	"github.com/detailersedge/backend/internal/handler"
	"github.com/detailersedge/backend/internal/logging"
	"github.com/detailersedge/backend/internal/repository"
	"github.com/detailersedge/backend/internal/service"
	"github.com/detailersedge/backend/internal/storage"
	"github.com/detailersedge/backend/pkg/auth"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	client, err := repository.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		logging.Fatal("failed to connect to document store", "error", err)
	}
	db := client.Database(cfg.MongoDatabase)

	testimonialRepo := repository.NewMongoTestimonialRepository(db, cfg.TestimonialCollection)
	contactRepo := repository.NewMongoContactRepository(db, cfg.ContactCollection)
	serviceRepo := repository.NewMongoServiceRepository(db, cfg.ServiceCollection)
	portfolioRepo := repository.NewMongoPortfolioRepository(db, cfg.PortfolioCollection)
	bookingRepo := repository.NewMongoBookingRepository(db, cfg.BookingCollection)
	userRepo := repository.NewMongoUserRepository(db, cfg.UserCollection)

	store := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLPrefix)

	testimonialService := service.NewTestimonialService(testimonialRepo)
	contactService := service.NewContactService(contactRepo)
	catalogService := service.NewCatalogService(serviceRepo, store)
	portfolioService := service.NewPortfolioService(portfolioRepo, store)
	bookingService := service.NewBookingService(bookingRepo)
	profileService := service.NewProfileService(userRepo)

	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	contactHandler := handler.NewContactHandler(contactService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	profileHandler := handler.NewProfileHandler(profileService)
	healthHandler := handler.NewHealthHandler(client)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	requireAuth := auth.RequireAuth(verifier)
	requireAdmin := auth.RequireAdmin(cfg.AdminEmails)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(handler.CORS(cfg.FrontendURL))
	router.Use(handler.SecurityHeaders)

	router.Get("/api/health", healthHandler.Health)

	router.Route("/api/testimonials", func(r chi.Router) {
		r.Post("/", testimonialHandler.Submit)
		r.Get("/", testimonialHandler.List)

		// Moderation requires admin privileges.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Patch("/{id}/status", testimonialHandler.PatchStatus)
			r.Delete("/{id}", testimonialHandler.Delete)
		})
	})

	router.Post("/api/contact", contactHandler.Submit)

	router.Route("/api/services", func(r chi.Router) {
		r.Get("/", serviceHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/", serviceHandler.Create)
			r.Put("/{id}", serviceHandler.Update)
			r.Delete("/{id}", serviceHandler.Delete)
		})
	})

	router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/", portfolioHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/upload", portfolioHandler.Upload)
			r.Delete("/{id}", portfolioHandler.Delete)
		})
	})

	router.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.Create)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Get("/", bookingHandler.List)
			r.Patch("/{id}/status", bookingHandler.PatchStatus)
		})
	})

	router.Route("/api/auth/profile", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", profileHandler.Get)
		r.Put("/", profileHandler.Update)
	})

	// Locally stored images are served straight off disk.
	router.Handle(cfg.UploadURLPrefix+"/*", http.StripPrefix(cfg.UploadURLPrefix+"/", http.FileServer(http.Dir(cfg.UploadDir))))

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		errChan <- httpServer.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server exited unexpectedly", "error", err)
		}
	case sig := <-sigChan:
		slog.Info("shutting down", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		slog.Error("document store disconnect failed", "error", err)
	}
}
