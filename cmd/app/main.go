package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"ghostkitchen/cmd"
	_ "ghostkitchen/docs"
	httpin "ghostkitchen/internal/adapters/in/http"
	"ghostkitchen/internal/adapters/out/postgres/cuisinerepo"
	"ghostkitchen/internal/adapters/out/postgres/kitchenrepo"
	"ghostkitchen/internal/adapters/out/postgres/orderrepo"
	"ghostkitchen/internal/adapters/out/postgres/otprepo"
	"ghostkitchen/internal/adapters/out/postgres/productrepo"
	"ghostkitchen/internal/adapters/out/postgres/restaurantrepo"
	"ghostkitchen/internal/adapters/out/postgres/userrepo"
	"ghostkitchen/internal/adapters/out/redisbus"
	"ghostkitchen/internal/generated/servers"
	"ghostkitchen/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title           Ghost Kitchen Platform API
// @version         1.0
// @description     Multi-tenant food ordering platform with live order tracking

// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const tokenLifetime = 24 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)
	redisClient := mustConnectRedis(configs.RedisURL)

	publisher := redisbus.NewPublisher(redisClient)
	subscriber := redisbus.NewSubscriber(redisClient)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(app.CreatePurgeExpiredOTPsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, subscriber, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		RedisURL:   goDotEnvVariable("REDIS_URL"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		OTPSecret:  goDotEnvVariable("OTP_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&kitchenrepo.KitchenDTO{},
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&cuisinerepo.CuisineDTO{},
		&userrepo.UserDTO{},
		&otprepo.OTPDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func mustConnectRedis(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}
	return redis.NewClient(opts)
}

func startWebServer(app *cmd.CompositionRoot, subscriber *redisbus.Subscriber, configs cmd.Config) {
	tokenIssuer := httpin.NewTokenIssuer(configs.JWTSecret, tokenLifetime)

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderETACommandHandler(),
		app.CreateSignupKitchenCommandHandler(),
		app.CreateCreateRestaurantCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDiscontinueProductCommandHandler(),
		app.CreateRequestOTPCommandHandler(),
		app.CreateVerifyOTPCommandHandler(),
		app.CreateLoginQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetOrdersByPhoneQueryHandler(),
		app.CreateGetKitchenActiveOrdersQueryHandler(),
		app.CreateGetKitchenHistoryOrdersQueryHandler(),
		app.CreateGetRestaurantsByKitchenQueryHandler(),
		app.CreateGetActiveRestaurantsQueryHandler(),
		app.CreateGetProductsByRestaurantQueryHandler(),
		tokenIssuer,
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(tokenIssuer.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	streams := httpin.NewStreamHandler(subscriber)
	streams.Register(e.Group("/api/v1"))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
