package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fitrack/internal/metrics"
	"github.com/limbo/fitrack/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	goalsService        service.GoalsServiceI
	measurementsService service.MeasurementsServiceI
	remindersService    service.RemindersServiceI
	jwtService          JWTServiceI
	metrics             *metrics.Manager
	gatherer            prometheus.Gatherer
	now                 func() time.Time
}

type ServicesList struct {
	UserService         service.UserServiceI
	GoalsService        service.GoalsServiceI
	MeasurementsService service.MeasurementsServiceI
	RemindersService    service.RemindersServiceI
	JwtService          JWTServiceI
	// Optional, a private registry is used when nil
	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer
	Clock    func() time.Time
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		goalsService:        servicesOptions.GoalsService,
		measurementsService: servicesOptions.MeasurementsService,
		remindersService:    servicesOptions.RemindersService,
		jwtService:          servicesOptions.JwtService,
		metrics:             servicesOptions.Metrics,
		gatherer:            servicesOptions.Gatherer,
		now:                 servicesOptions.Clock,
	}
	if s.metrics == nil {
		s.metrics, s.gatherer = metrics.NewTestManagerAndRegistry()
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RecoveryMiddleware, s.MetricsMiddleware, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)
			r.Route("/goals", func(r chi.Router) {
				r.Get("/", s.GetGoals)
				r.Post("/", s.CreateGoal)
				r.Get("/active", s.GetActiveGoal)
				r.Post("/recommendation", s.Recommend)
				r.Get("/{id}", s.GetGoal)
				r.Get("/{id}/progress", s.GoalProgress)
				r.Patch("/{id}/deadline", s.ExtendDeadline)
				r.Post("/{id}/fulfil", s.MarkFulfilled)
				r.Post("/{id}/stop", s.StopGoal)
				r.Post("/{id}/reactivate", s.ReactivateGoal)
			})
			r.Route("/measurements", func(r chi.Router) {
				r.Get("/", s.GetMeasurements)
				r.Post("/", s.RecordMeasurement)
				r.Get("/assessment", s.Assess)
			})
			r.Route("/reminder", func(r chi.Router) {
				r.Get("/", s.GetReminder)
				r.Put("/", s.UpdateReminder)
				r.Post("/enable", s.EnableReminder)
				r.Post("/disable", s.DisableReminder)
				r.Get("/next", s.NextReminder)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
