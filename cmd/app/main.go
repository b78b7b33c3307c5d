package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"beverage/cmd"
	beveragehttp "beverage/internal/adapters/in/http"
	"beverage/internal/adapters/out/postgres"
	"beverage/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := jobs.NewJobManager(
		app.CreatePruneNotificationsCommandHandler(),
		notificationRetention(configs),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		NotificationRetentionHours: goDotEnvVariable("NOTIFICATION_RETENTION_HOURS"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func notificationRetention(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.NotificationRetentionHours)
	if err != nil || hours <= 0 {
		hours = 24 * 30
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := beveragehttp.NewServer(beveragehttp.ServerHandlers{
		RegisterRestaurant:   app.CreateRegisterRestaurantCommandHandler(),
		UpdateProfile:        app.CreateUpdateProfileCommandHandler(),
		SetPrice:             app.CreateSetPriceCommandHandler(),
		RemoveSize:           app.CreateRemoveSizeCommandHandler(),
		PlaceOrder:           app.CreatePlaceOrderCommandHandler(),
		TransitionOrder:      app.CreateTransitionOrderCommandHandler(),
		TransitionOrders:     app.CreateTransitionOrdersCommandHandler(),
		ForceSetStatus:       app.CreateForceSetStatusCommandHandler(),
		CreateDeliveryPerson: app.CreateCreateDeliveryPersonCommandHandler(),
		SetPersonActive:      app.CreateSetDeliveryPersonActiveCommandHandler(),
		RemoveDeliveryPerson: app.CreateRemoveDeliveryPersonCommandHandler(),
		AssignDelivery:       app.CreateAssignDeliveryCommandHandler(),
		UnassignDelivery:     app.CreateUnassignDeliveryCommandHandler(),
		MarkNotificationRead: app.CreateMarkNotificationReadCommandHandler(),
		GetCatalog:           app.CreateGetCatalogQueryHandler(),
		GetOrder:             app.CreateGetOrderQueryHandler(),
		ListOrders:           app.CreateListOrdersQueryHandler(),
		RecentNotifications:  app.CreateRecentNotificationsQueryHandler(),
		Dashboard:            app.CreateDashboardQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
