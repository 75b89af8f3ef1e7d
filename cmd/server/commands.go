package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/api/routes"
	"github.com/princeprakhar/dealership-reviews/internal/config"
	"github.com/princeprakhar/dealership-reviews/internal/database"
	"github.com/princeprakhar/dealership-reviews/internal/repository"
	"github.com/princeprakhar/dealership-reviews/internal/services"
	"github.com/princeprakhar/dealership-reviews/internal/web/client"
	"github.com/princeprakhar/dealership-reviews/internal/web/router"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "dealership",
	Short: "Car dealership reviews",
	Long:  "Serves the dealership review web front-end and its backend api.",
}

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the web front-end",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := load()

		engine := newEngine(cfg)
		api := client.New(cfg.BackendURL, cfg.HTTPTimeout)
		sessions := session.NewManager(cfg.SessionSecret, cfg.Environment == "production")
		router.SetupRoutes(engine, api, sessions)

		return serve(cfg.WebAddr, engine)
	},
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the backend api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := load()

		db, mdb, closeStores, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		dealers := repository.NewDealerRepository(mdb)
		reviews := repository.NewReviewRepository(mdb)
		vehicles := repository.NewVehicleRepository(mdb)

		// mailer stays a nil interface when SMTP is not configured.
		var mailer services.Mailer
		if cfg.MailEnabled() {
			mailer = services.NewEmailService(cfg)
		}

		svc := routes.Services{
			Auth:    services.NewAuthService(repository.NewUserRepository(db), repository.NewTokenRepository(db), cfg.JWTSecret, mailer),
			Dealers: services.NewDealerService(dealers, vehicles),
			Reviews: services.NewReviewService(reviews, dealers, services.NewSentimentService(cfg)),
			Cars:    services.NewCarService(repository.NewCarRepository(db)),
		}

		engine := newEngine(cfg)
		routes.SetupRoutes(engine, svc, cfg)

		return serve(cfg.APIAddr, engine)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled dealerships, reviews, inventory and car catalog into empty stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := load()

		db, mdb, closeStores, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		seeder := services.NewSeedService(
			repository.NewDealerRepository(mdb),
			repository.NewReviewRepository(mdb),
			repository.NewVehicleRepository(mdb),
			services.NewCarService(repository.NewCarRepository(db)),
		)

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		if err := seeder.Seed(ctx); err != nil {
			return err
		}
		logger.Info("Seeding complete")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("environment", "", "runtime environment (production enables JSON logs)")
	webCmd.Flags().String("web-addr", "", "listen address of the web front-end")
	webCmd.Flags().String("backend-url", "", "base URL of the backend api")
	apiCmd.Flags().String("api-addr", "", "listen address of the backend api")

	bindFlag("environment", "ENVIRONMENT", rootCmd)
	bindFlag("web-addr", "WEB_ADDR", webCmd)
	bindFlag("backend-url", "BACKEND_URL", webCmd)
	bindFlag("api-addr", "API_ADDR", apiCmd)

	rootCmd.AddCommand(webCmd, apiCmd, seedCmd)
}

// bindFlag lets a flag override the environment key it names.
func bindFlag(flag, key string, cmd *cobra.Command) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	viper.BindPFlag(key, f)
}

func load() *config.Config {
	cfg := config.Load(nil)
	logger.Init(cfg.Environment)
	return cfg
}

func newEngine(cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.New()
}

func openStores(cfg *config.Config) (*gorm.DB, *mongo.Database, func(), error) {
	db, err := database.Init(cfg.DatabaseURL, cfg.Environment != "production")
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoClient, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, nil, err
	}
	mdb := mongoClient.Database(cfg.MongoDatabase)
	if err := database.EnsureIndexes(ctx, mdb); err != nil {
		logger.Warn("Failed to ensure mongo indexes: ", err)
	}

	closeStores := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect mongo: ", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, mdb, closeStores, nil
}

// serve runs handler on addr until SIGINT/SIGTERM, then shuts down gracefully.
func serve(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting on " + addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
