package app

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"

	"github.com/haguru/oak/config"
	"github.com/haguru/oak/internal/auth"
	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/middleware"
	"github.com/haguru/oak/internal/pokegateway/pokeapi"
	"github.com/haguru/oak/internal/routes"
	"github.com/haguru/oak/internal/server"
	mongoUserRepo "github.com/haguru/oak/internal/userrepo/mongo"
	postgresUserRepo "github.com/haguru/oak/internal/userrepo/postgres"
	"github.com/haguru/oak/internal/userservice"
	"github.com/haguru/oak/pkg/databases/mongo"
	"github.com/haguru/oak/pkg/databases/postgres"
	"github.com/haguru/oak/pkg/metrics"
	"github.com/haguru/oak/pkg/restclient"
	zerologger "github.com/haguru/oak/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	// Login rate limit: sustained requests per second and burst size.
	LoginRateLimit = 5
	LoginRateBurst = 10
)

// App is the composition root: it builds every adapter explicitly and
// hands them to the consumers through their port interfaces.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Logger     interfaces.Logger
	privateKey *ecdsa.PrivateKey
	userRepo   interfaces.UserRepository
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerologger.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Server = server.NewServer(cfg.Host, cfg.Port, logger)

	metricsInstance := app.initializeMetrics()

	if err := app.initializePrivateKey(); err != nil {
		return nil, fmt.Errorf("failed to initialize private key: %v", err)
	}

	dbClient, err := app.initializeDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database client: %v", err)
	}

	if err := app.initializeUserRepo(dbClient); err != nil {
		return nil, fmt.Errorf("failed to initialize user repository: %v", err)
	}

	userService := userservice.NewUserService(app.userRepo, logger)

	restClient := restclient.NewClient(cfg.PokeAPI.Timeout(), logger)
	gateway, err := pokeapi.NewPokeAPIGateway(restClient, cfg.PokeAPI.BaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pokemon gateway: %v", err)
	}

	route := routes.NewRoute(metricsInstance, userService, gateway, logger, app.privateKey, validator)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})
	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	if err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %v", err)
	}

	if err := app.Server.AddRoute(routes.UsersRouteAPI, route.Users); err != nil {
		return nil, fmt.Errorf("failed to add users route: %v", err)
	}

	if err := app.Server.AddRoute(routes.PokemonRouteAPI, route.Pokemon); err != nil {
		return nil, fmt.Errorf("failed to add pokemon route: %v", err)
	}

	loginLimiter := rate.NewLimiter(rate.Limit(LoginRateLimit), LoginRateBurst)
	loginHandler := middleware.RateLimitMiddleware(loginLimiter)(http.HandlerFunc(route.Login))
	if err := app.Server.AddRoute(routes.LoginRouteAPI, loginHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add login route: %v", err)
	}

	metricsInstance.SetCurrentTimeGauge(routes.ServiceStartTimestamp)

	return app, nil
}

// Run starts the server and blocks until it stops.
func (app *App) Run() error {
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}
	return nil
}

// Close releases the repository's database connection.
func (app *App) Close(ctx context.Context) error {
	if app.userRepo != nil {
		return app.userRepo.Close(ctx)
	}
	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics()

	appMetrics.RegisterCounterVec(routes.HTTPRequestsTotal, routes.HTTPRequestsTotalHelp,
		[]string{routes.RouteLabel})

	appMetrics.RegisterCounter(routes.UsersRequestsTotal, routes.UsersRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.UsersErrorsTotal, routes.UsersErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.UsersDurationSeconds,
		routes.UsersDurationSecondsHelp,
		routes.UsersDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.PokemonRequestsTotal, routes.PokemonRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.PokemonUpstreamErrors, routes.PokemonUpstreamErrorsHelp)
	appMetrics.RegisterHistogram(
		routes.PokemonDurationSeconds,
		routes.PokemonDurationSecondsHelp,
		routes.PokemonDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.LoginRequestsTotal, routes.LoginRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.LoginSuccessTotal, routes.LoginSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.LoginFailedTotal, routes.LoginFailedTotalHelp)
	appMetrics.RegisterHistogram(
		routes.LoginDurationSeconds,
		routes.LoginDurationSecondsHelp,
		routes.LoginDurationSecondsBuckets)

	appMetrics.RegisterGauge(routes.ServiceStartTimestamp, routes.ServiceStartTimestampHelp)

	return appMetrics
}

func (app *App) initializeDBClient() (interfaces.DBClient, error) {
	var dbClient interfaces.DBClient
	var dsn string

	switch app.Config.Database.Type {
	case "mongo":
		dbClient = mongo.NewMongoDB(app.Config.Database.MongoDB.Timeout(), app.Logger)
		dsn = app.Config.Database.MongoDB.DSN

	case "postgres":
		pgCfg := app.Config.Database.Postgres
		dbClient = postgres.NewPostgresDatabaseClient(
			pgCfg.MaxOpenConns, pgCfg.MaxIdleConns, pgCfg.ConnMaxLifetime())
		dsn = pgCfg.DSN

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	if err := dbClient.Connect(context.Background(), dsn); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %v", app.Config.Database.Type, err)
	}

	return dbClient, nil
}

func (app *App) initializeUserRepo(dbClient interfaces.DBClient) error {
	var userRepo interfaces.UserRepository
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		userRepo, err = mongoUserRepo.NewMongoUserRepository(dbClient, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize MongoDB repository: %v", err)
		}

	case "postgres":
		userRepo, err = postgresUserRepo.NewPostgresUserRepository(dbClient, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize PostgreSQL repository: %v", err)
		}

	default:
		return fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	if err = userRepo.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("failed to ensure schema: %v", err)
	}

	if app.Config.Database.Seed {
		if err = userRepo.Seed(context.Background()); err != nil {
			return fmt.Errorf("failed to seed users: %v", err)
		}
	}

	app.userRepo = userRepo
	return nil
}

func (app *App) initializePrivateKey() error {
	if app.Config.PrivateKeyPath == "" {
		return fmt.Errorf("private key path is not provided in the configuration")
	}

	privateKey, err := auth.LoadECDSAPrivateKey(app.Config.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load private key: %v", err)
	}

	app.privateKey = privateKey
	return nil
}
