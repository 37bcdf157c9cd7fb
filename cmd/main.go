package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/localbiz/marketplace-api/internal/cognito"
	"github.com/localbiz/marketplace-api/internal/handlers"
	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/metrics"
	"github.com/localbiz/marketplace-api/internal/middlewares"
	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/repositories"
	"github.com/localbiz/marketplace-api/internal/services"
	"github.com/localbiz/marketplace-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/localbiz/marketplace-api/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title marketplace-api
// @version 1.0.0
// @description REST API for discovering and managing local business listings
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application settings resolved from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CacheTTLSecond    int

	KafkaBrokers string
	KafkaTopic   string

	JWTSecretKey        string
	JWTExpSecond        int
	JWTRefreshExpSecond int

	AWSRegion          string
	S3Bucket           string
	UploadExpirySecond int
	MediaMaxFileSize   int64

	CognitoIssuer      string
	CognitoClientID    string
	CognitoDomain      string
	CognitoRedirectURI string

	CORSAllowedOrigin string
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT, S3, and Cognito configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "marketplace")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.CacheTTLSecond, err = strconv.Atoi(getEnv("REDIS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "marketplace-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "900")); err != nil {
		return
	}
	if cfg.JWTRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	// S3 / media config
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	cfg.S3Bucket = getEnv("S3_BUCKET", "marketplace-media")
	if cfg.UploadExpirySecond, err = strconv.Atoi(getEnv("S3_UPLOAD_EXPIRY_SECOND", "900")); err != nil {
		return
	}
	var maxSize int
	if maxSize, err = strconv.Atoi(getEnv("MEDIA_MAX_FILE_SIZE", "10485760")); err != nil {
		return
	}
	cfg.MediaMaxFileSize = int64(maxSize)

	// Cognito config
	cfg.CognitoIssuer = getEnv("COGNITO_ISSUER", "")
	cfg.CognitoClientID = getEnv("COGNITO_CLIENT_ID", "")
	cfg.CognitoDomain = getEnv("COGNITO_DOMAIN", "")
	cfg.CognitoRedirectURI = getEnv("COGNITO_REDIRECT_URI", "")

	// CORS config
	cfg.CORSAllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", "*")

	return
}

// redisPinger adapts a redis client to the health handler's CachePinger.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// run initializes the logger, database, Redis, Kafka, S3, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// S3 object store for media
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		logger.Log.Fatal("AWS config error:", err)
	}
	s3Client := s3.NewFromConfig(awsCfg)
	presignClient := s3.NewPresignClient(s3Client)
	objectStore := storage.NewObjectStore(s3Client, presignClient, cfg.S3Bucket, cfg.AWSRegion,
		time.Duration(cfg.UploadExpirySecond)*time.Second)

	// Token services
	tokenService := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
		jwt.WithRefreshExpiration(time.Duration(cfg.JWTRefreshExpSecond)*time.Second),
	)
	exchanger := cognito.NewExchanger(cfg.CognitoDomain, cfg.CognitoClientID, cfg.CognitoRedirectURI, nil)
	verifier := cognito.NewVerifier(cfg.CognitoIssuer, cfg.CognitoClientID, nil)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	businessReadRepo := repositories.NewBusinessReadRepository(db)
	businessWriteRepo := repositories.NewBusinessWriteRepository(db)
	mediaReadRepo := repositories.NewMediaReadRepository(db)
	mediaWriteRepo := repositories.NewMediaWriteRepository(db)
	businessCache := repositories.NewBusinessCacheRepository(rdb, time.Duration(cfg.CacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenService, kafkaWriter)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	businessService := services.NewBusinessService(businessReadRepo, businessWriteRepo, mediaReadRepo, businessCache, kafkaWriter)
	mediaService := services.NewMediaService(businessReadRepo, mediaReadRepo, mediaWriteRepo, objectStore, businessCache, kafkaWriter, cfg.MediaMaxFileSize)
	cognitoService := services.NewCognitoService(exchanger)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	refreshHandler := handlers.NewRefreshHandler(authService)
	cognitoLoginHandler := handlers.NewCognitoLoginHandler(cognitoService)
	getProfileHandler := handlers.NewGetProfileHandler(userService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(userService)
	changePasswordHandler := handlers.NewChangePasswordHandler(userService)
	createBusinessHandler := handlers.NewCreateBusinessHandler(businessService)
	getBusinessHandler := handlers.NewGetBusinessHandler(businessService)
	listBusinessesHandler := handlers.NewListBusinessesHandler(businessService)
	updateBusinessHandler := handlers.NewUpdateBusinessHandler(businessService)
	deleteBusinessHandler := handlers.NewDeleteBusinessHandler(businessService)
	uploadURLHandler := handlers.NewMediaUploadURLHandler(mediaService)
	confirmUploadHandler := handlers.NewMediaConfirmHandler(mediaService)
	deleteMediaHandler := handlers.NewMediaDeleteHandler(mediaService)
	cognitoMeHandler := handlers.NewCognitoMeHandler()
	healthHandler := handlers.NewHealthHandler(db, redisPinger{client: rdb})

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.SecurityHeadersMiddleware(cfg.CORSAllowedOrigin))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(middlewares.ValidateJSONContentType)

	// Public routes
	r.Post("/auth/register", registerHandler)
	r.Post("/auth/login", loginHandler)
	r.Post("/auth/refresh", refreshHandler)
	r.Post("/auth/cognito", cognitoLoginHandler)
	r.With(middlewares.AuthenticateCognito(tokenService, verifier)).
		Get("/auth/cognito/me", cognitoMeHandler)

	r.Get("/api/businesses", listBusinessesHandler)
	r.Get("/api/businesses/{businessID}", getBusinessHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokenService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/api/users/me", getProfileHandler)
		r.Put("/api/users/me", updateProfileHandler)
		r.Put("/api/users/me/password", changePasswordHandler)

		r.With(middlewares.RequireRole(models.RoleBusinessOwner, models.RoleAdmin)).
			Post("/api/businesses", createBusinessHandler)
		r.Put("/api/businesses/{businessID}", updateBusinessHandler)
		r.Delete("/api/businesses/{businessID}", deleteBusinessHandler)

		r.Post("/api/businesses/{businessID}/media/upload-url", uploadURLHandler)
		r.Post("/api/businesses/{businessID}/media/confirm", confirmUploadHandler)
		r.Delete("/api/businesses/{businessID}/media/{mediaID}", deleteMediaHandler)
	})

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
