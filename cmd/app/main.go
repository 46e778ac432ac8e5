package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/hubrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:              goDotEnvVariable("JWT_ISSUER"),
		JWTTTLMinutes:          goDotEnvIntVariable("JWT_TTL_MINUTES"),
		BcryptCost:             goDotEnvIntVariable("BCRYPT_COST"),
		PickupBacklogThreshold: goDotEnvIntVariable("PICKUP_BACKLOG_THRESHOLD"),
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

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.EventDTO{},
		&shipmentrepo.TrackingReservationDTO{},
		&userrepo.UserDTO{},
		&hubrepo.HubDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteHubDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateGetDashboardStatsQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		configs.PickupBacklogThreshold,
		slog.Default(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateShipment:     app.CreateCreateShipmentCommandHandler(),
		UpdateShipment:     app.CreateUpdateShipmentCommandHandler(),
		TransitionShipment: app.CreateTransitionShipmentCommandHandler(),
		AddShipmentEvent:   app.CreateAddShipmentEventCommandHandler(),
		DeleteShipment:     app.CreateDeleteShipmentCommandHandler(),

		RegisterUser:       app.CreateRegisterUserCommandHandler(),
		ChangeUserPassword: app.CreateChangeUserPasswordCommandHandler(),
		UpdateUserProfile:  app.CreateUpdateUserProfileCommandHandler(),
		ChangeUserRole:     app.CreateChangeUserRoleCommandHandler(),
		DeactivateUser:     app.CreateDeactivateUserCommandHandler(),

		CreateHub:   app.CreateCreateHubCommandHandler(),
		CreateRoute: app.CreateCreateRouteCommandHandler(),

		AuthenticateUser:  app.CreateAuthenticateUserQueryHandler(),
		GetShipment:       app.CreateGetShipmentQueryHandler(),
		ListShipments:     app.CreateListShipmentsQueryHandler(),
		ListUsers:         app.CreateListUsersQueryHandler(),
		GetDashboardStats: app.CreateGetDashboardStatsQueryHandler(),
	})
	server.RegisterRoutes(e, app.TokenSigner())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
