package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/cmd"
	httpserver "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/driverrepo"
	"storefront/internal/adapters/out/postgres/menurepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/rabbitmq"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	publisher := connectBroker(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	if err := seedMenu(context.Background(), &app); err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateProgressOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RabbitMQHost:     goDotEnvVariable("RABBITMQ_HOST"),
		RabbitMQPort:     goDotEnvVariable("RABBITMQ_PORT"),
		RabbitMQUser:     goDotEnvVariable("RABBITMQ_USER"),
		RabbitMQPassword: goDotEnvVariable("RABBITMQ_PASSWORD"),
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

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&menurepo.MenuItemDTO{},
		&driverrepo.DriverDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// connectBroker dials RabbitMQ. The storefront stays up without the broker;
// status events are simply not published until the next restart.
func connectBroker(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		configs.RabbitMQUser, configs.RabbitMQPassword,
		configs.RabbitMQHost, configs.RabbitMQPort)

	conn, err := rabbitmq.Connect(url)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, status events disabled", "error", err)
		return nil
	}

	return rabbitmq.NewPublisher(conn)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateSaveMenuItemCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetAllDriversQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
