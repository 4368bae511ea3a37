package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/comments"
	"github.com/user/newswire-go/config"
	"github.com/user/newswire-go/db"
	_ "github.com/user/newswire-go/docs"
	"github.com/user/newswire-go/logger"
	"github.com/user/newswire-go/news"
	"github.com/user/newswire-go/notifier"
	"github.com/user/newswire-go/store/postgres"
	"github.com/user/newswire-go/users"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Server.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("database connected", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.DBName))

	userStore := postgres.NewUserStore(pool)
	newsStore := postgres.NewNewsStore(pool)
	commentStore := postgres.NewCommentStore(pool)

	events := notifier.New(cfg.Redis, log)
	defer events.Close()

	mediaStore, err := news.NewDiskMediaStore(cfg.Media)
	if err != nil {
		return err
	}

	authService := auth.NewService(userStore, *cfg.Auth, log)
	usersService := users.NewService(userStore, log)
	newsService := news.NewService(newsStore, commentStore, events, log)
	commentsService := comments.NewService(commentStore, newsStore, events, log)

	authHandlers := auth.NewHandlers(authService, log)
	usersHandlers := users.NewHandlers(usersService, log)
	newsHandlers := news.NewHandlers(newsService, mediaStore, log)
	commentsHandlers := comments.NewHandlers(commentsService, log)

	router := newRouter(cfg, log)
	requireAuth := auth.JWTMiddleware(cfg.Auth)
	optionalAuth := auth.OptionalJWT(cfg.Auth)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Get("/count", usersHandlers.HandleCount())
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", authHandlers.HandleMe())
			r.Put("/profile", usersHandlers.HandleUpdateProfile())
		})
	})

	router.Route("/news", func(r chi.Router) {
		r.Get("/", newsHandlers.HandleList())
		r.Get("/count/published", newsHandlers.HandlePublishedCount())
		r.Get("/author/{id}", newsHandlers.HandleListByAuthor())
		r.With(optionalAuth).Get("/{id}", newsHandlers.HandleGet())
		r.Get("/{id}/comments", commentsHandlers.HandleList())
		r.Post("/{id}/view", newsHandlers.HandleView())

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", newsHandlers.HandleCreate())
			r.Get("/status/{status}", newsHandlers.HandleListByStatus())
			r.Put("/{id}", newsHandlers.HandleUpdate())
			r.Delete("/{id}", newsHandlers.HandleDelete())
			r.Put("/{id}/status", newsHandlers.HandleSetStatus())
			r.Post("/{id}/like", newsHandlers.HandleLike())
			r.Post("/{id}/comment", commentsHandlers.HandleAdd())
		})
	})

	router.Get("/comments/count", commentsHandlers.HandleCount())

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	router.Handle(cfg.Media.BaseURL+"/*", http.StripPrefix(cfg.Media.BaseURL+"/",
		http.FileServer(http.Dir(cfg.Media.Dir))))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func newRouter(cfg *config.AppConfig, log *zap.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(recoverPanics(log))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	return router
}

// recoverPanics turns a handler panic into a standard 500 JSON response
// instead of a dropped connection.
func recoverPanics(log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic in handler",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					auth.WriteError(w, r, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
