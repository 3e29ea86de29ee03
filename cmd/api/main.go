// @title Fitrack API
// @description Weight goals, measurements and reminders
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/limbo/fitrack/internal/api"
	"github.com/limbo/fitrack/internal/metrics"
	"github.com/limbo/fitrack/internal/repository"
	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/pkg/cleanup"
	"github.com/limbo/fitrack/pkg/config"
	jwtservice "github.com/limbo/fitrack/pkg/jwt_service"
	"github.com/limbo/fitrack/pkg/logging"
	"github.com/limbo/fitrack/pkg/progress"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logging.Setup(logging.Params{
		FileName:    cfg.GetString("LOG_FILE"),
		LogToStdout: cfg.GetBool("LOG_TO_STDOUT", true),
		Level:       cfg.GetString("LOG_LEVEL"),
		JSON:        cfg.GetBool("LOG_JSON", true),
	})
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.Connect(&dbCfg)
	defer cleanup.CleanUp()
	promRegistry := metrics.SetupPrometheus(
		pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": dbCfg.DB}),
	)

	engine := progress.NewEngine(cfg.GetFloat("GOAL_TOLERANCE_KG", progress.DefaultTolerance))
	measurementsRepo := repository.NewMeasurementsRepoWithConn(pool)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		GoalsService:        service.NewGoalsService(repository.NewGoalsRepoWithConn(pool), measurementsRepo, service.WithEngine(engine)),
		MeasurementsService: service.NewMeasurementsService(measurementsRepo),
		RemindersService:    service.NewRemindersService(repository.NewRemindersRepoWithConn(pool)),
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)),
		Metrics:             metrics.NewManager("fitrack", "api", promRegistry),
		Gatherer:            promRegistry,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	slog.Info("goal tolerance configured", slog.Float64("kg", engine.CompletionBand()))
	if err := serv.Run(ctx, cfg.GetString("API_ADDRESS")); err != nil {
		log.Println("Server error: " + err.Error())
	}
}
