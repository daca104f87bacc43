package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webeat/internal/config"
	"webeat/internal/database"
	"webeat/internal/handlers"
	"webeat/internal/repository"
	"webeat/internal/security"
	"webeat/internal/service"
	"webeat/pkg/logging"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/kakao"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("database connection established", "type", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	coupleRepo := repository.NewCoupleRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	eventRepo := repository.NewEventRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	travelRepo := repository.NewTravelRepository(db)
	cardRepo := repository.NewInvitationCardRepository(db)
	guestbookRepo := repository.NewGuestbookRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.SessionDuration)
	coupleService := service.NewCoupleService(inviteRepo, coupleRepo, userRepo)
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		slog.Error("failed to initialize email service", "error", err)
		os.Exit(1)
	}

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"kakao": {
			Name:  "kakao",
			Label: "Kakao",
			Config: &oauth2.Config{
				ClientID:     cfg.KakaoClientID,
				ClientSecret: cfg.KakaoClientSecret,
				Endpoint:     kakao.Endpoint,
				Scopes:       []string{"account_email", "profile_nickname", "profile_image"},
			},
			UserInfoURL: "https://kapi.kakao.com/v2/user/me",
		},
		"apple": {
			Name:  "apple",
			Label: "Apple",
			Config: &oauth2.Config{
				ClientID:     cfg.AppleClientID,
				ClientSecret: cfg.AppleClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://appleid.apple.com/auth/authorize",
					TokenURL: "https://appleid.apple.com/auth/token",
				},
				Scopes: []string{"name", "email"},
			},
			AuthParams: map[string]string{
				"response_mode": "query",
			},
		},
	}

	// Rate limiters: login guards credential stuffing, invite guards code
	// guessing on the public lookup/accept endpoints
	loginLimiter := security.NewRateLimiter(10, time.Minute)
	inviteLimiter := security.NewRateLimiter(20, time.Minute)

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService, oauthProviders, cfg.OAuthRedirectBaseURL)
	inviteHandler := handlers.NewInviteHandler(coupleService, emailService)
	coupleHandler := handlers.NewCoupleHandler(coupleService, userRepo)
	eventHandler := handlers.NewEventHandler(eventRepo, coupleService)
	todoHandler := handlers.NewTodoHandler(todoRepo, coupleService)
	travelHandler := handlers.NewTravelHandler(travelRepo, coupleService)
	cardHandler := handlers.NewInvitationCardHandler(cardRepo, coupleService)
	guestbookHandler := handlers.NewGuestbookHandler(guestbookRepo, coupleService)

	// Setup routes
	mux := http.NewServeMux()

	// Auth routes
	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", middleware.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Invite and couple routes. Lookup is public so an invited partner can
	// preview the invite before signing in.
	mux.HandleFunc("POST /api/invites", middleware.RequireAuth(inviteHandler.CreateInvite))
	mux.HandleFunc("GET /api/invites", middleware.RequireAuth(inviteHandler.ListInvites))
	mux.HandleFunc("GET /api/invites/lookup", middleware.RateLimit(inviteLimiter, inviteHandler.LookupInvite))
	mux.HandleFunc("POST /api/invites/accept", middleware.RateLimit(inviteLimiter, middleware.RequireAuth(inviteHandler.AcceptInvite)))
	mux.HandleFunc("GET /api/couple", middleware.RequireAuth(coupleHandler.GetCouple))

	// Event routes
	mux.HandleFunc("GET /api/events", middleware.RequireAuth(eventHandler.ListEvents))
	mux.HandleFunc("POST /api/events", middleware.RequireAuth(eventHandler.CreateEvent))
	mux.HandleFunc("PUT /api/events/{id}", middleware.RequireAuth(eventHandler.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{id}", middleware.RequireAuth(eventHandler.DeleteEvent))

	// Todo routes
	mux.HandleFunc("GET /api/todos", middleware.RequireAuth(todoHandler.ListTodos))
	mux.HandleFunc("POST /api/todos", middleware.RequireAuth(todoHandler.CreateTodo))
	mux.HandleFunc("PUT /api/todos/{id}", middleware.RequireAuth(todoHandler.UpdateTodo))
	mux.HandleFunc("DELETE /api/todos/{id}", middleware.RequireAuth(todoHandler.DeleteTodo))

	// Travel routes
	mux.HandleFunc("GET /api/travels", middleware.RequireAuth(travelHandler.ListTravels))
	mux.HandleFunc("POST /api/travels", middleware.RequireAuth(travelHandler.CreateTravel))
	mux.HandleFunc("PUT /api/travels/{id}", middleware.RequireAuth(travelHandler.UpdateTravel))
	mux.HandleFunc("DELETE /api/travels/{id}", middleware.RequireAuth(travelHandler.DeleteTravel))
	mux.HandleFunc("POST /api/travels/{id}/photos", middleware.RequireAuth(travelHandler.AddPhoto))

	// Invitation card routes
	mux.HandleFunc("GET /api/invitations", middleware.RequireAuth(cardHandler.ListCards))
	mux.HandleFunc("POST /api/invitations", middleware.RequireAuth(cardHandler.CreateCard))
	mux.HandleFunc("PUT /api/invitations/{id}", middleware.RequireAuth(cardHandler.UpdateCard))
	mux.HandleFunc("DELETE /api/invitations/{id}", middleware.RequireAuth(cardHandler.DeleteCard))

	// Guestbook routes
	mux.HandleFunc("GET /api/guestbook", middleware.RequireAuth(guestbookHandler.ListEntries))
	mux.HandleFunc("POST /api/guestbook", middleware.RequireAuth(guestbookHandler.CreateEntry))
	mux.HandleFunc("DELETE /api/guestbook/{id}", middleware.RequireAuth(guestbookHandler.DeleteEntry))

	// Operational endpoints
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", handlers.MetricsHandler())

	// Wrap with logging and metrics middleware
	handler := handlers.Logging(handlers.Metrics(mux))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		slog.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			slog.Error("failed to clean up expired sessions", "error", err)
		}
	}
}
