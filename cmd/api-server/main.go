package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rsdhub/internal/auth"
	"rsdhub/internal/event"
	"rsdhub/internal/release"
	"rsdhub/internal/scraper"
	"rsdhub/internal/share"
	synchub "rsdhub/internal/sync"
	"rsdhub/internal/want"
	"rsdhub/pkg/database"
	"rsdhub/pkg/utils"
)

func main() {
	utils.LoadEnv()

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Start TCP sync first (so you notice binding errors early)
	hub := synchub.NewHub()
	router.GET("/ws", synchub.WSHandler(hub))
	tcpSrv := synchub.NewServer(":7070", hub)
	notifier := synchub.NewBroadcaster(hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Catalog (public)
	eventRepo := event.NewRepo(db)
	eventHandler := event.NewHandler(eventRepo)
	eventHandler.RegisterRoutes(router.Group("/events"))

	releaseRepo := release.NewRepo(db)
	releaseHandler := release.NewHandler(releaseRepo)
	releaseHandler.RegisterRoutes(router.Group(""))

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Protected routes
	protected := router.Group("/users")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"email":    claims.Email,
		})
	})

	// Wants (protected)
	wantRepo := want.NewRepo(db)
	wantHandler := want.NewHandler(wantRepo, releaseRepo, notifier)
	wantHandler.RegisterRoutes(protected)

	// Sharing (protected owner side, public read side)
	shareRepo := share.NewRepo(db)
	shareHandler := share.NewHandler(shareRepo, authRepo, wantRepo)
	shareHandler.RegisterRoutes(protected)
	shareHandler.RegisterPublicRoutes(router.Group(""))

	// Admin: imports and event removal
	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(tokenSvc, authRepo), auth.RequireAdmin(authRepo))
	scrapeHandler := scraper.NewHandler(db)
	scrapeHandler.RegisterRoutes(admin)
	eventHandler.RegisterAdminRoutes(admin)

	httpSrv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("HTTP API server listening on :8080")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("servers stopped")
}
