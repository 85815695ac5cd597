package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"autoservice/cmd"
	httpin "autoservice/internal/adapters/in/http"
	amqpout "autoservice/internal/adapters/out/amqp"
	"autoservice/internal/adapters/out/postgres/catalogrepo"
	"autoservice/internal/adapters/out/postgres/employeerepo"
	"autoservice/internal/adapters/out/postgres/orderrepo"
	"autoservice/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	waitForDatabase(dsn, logger)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ServiceTaskDTO{},
		&orderrepo.AssignmentDTO{},
		&orderrepo.HistoryDTO{},
		&employeerepo.EmployeeDTO{},
		&catalogrepo.CatalogServiceDTO{},
	); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	notifier, closeNotifier := connectNotifier(configs.AmqpURL, logger)
	defer closeNotifier()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		AmqpURL:    os.Getenv("AMQP_URL"),
	}
}

// waitForDatabase pings until postgres accepts connections so the app can
// start before the database in container environments.
func waitForDatabase(dsn string, logger *slog.Logger) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Error("Invalid database configuration", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	for attempt := 1; attempt <= 30; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		logger.Info("Waiting for database", "attempt", attempt, "error", err)
		time.Sleep(time.Second)
	}

	logger.Error("Database did not become ready", "error", err)
	os.Exit(1)
}

// connectNotifier dials RabbitMQ when an AMQP URL is configured. Returns a
// nil notifier otherwise, which disables status publishing.
func connectNotifier(url string, logger *slog.Logger) (ports.StatusNotifier, func()) {
	if url == "" {
		logger.Info("AMQP_URL not set, status publishing disabled")
		return nil, func() {}
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}

	channel, err := conn.Channel()
	if err != nil {
		logger.Error("Failed to open RabbitMQ channel", "error", err)
		os.Exit(1)
	}

	notifier, err := amqpout.NewStatusNotifier(channel)
	if err != nil {
		logger.Error("Failed to declare status exchange", "error", err)
		os.Exit(1)
	}

	return notifier, func() {
		_ = channel.Close()
		_ = conn.Close()
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateEmployeeCommandHandler(),
		app.CreateSetTaskStatusCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateReconcileServicesCommandHandler(),
		app.CreateGetOrderViewQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
