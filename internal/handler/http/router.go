package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	calendarHandler CalendarHandler,
	scheduleHandler ScheduleHandler,
	timekeepingHandler TimekeepingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "onebiz-timekeeping"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendar", calendarHandler.GetDays)

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/grid", scheduleHandler.GetGrid)
		})

		r.Route("/timekeeping", func(r chi.Router) {
			r.Get("/summaries", timekeepingHandler.ListSummaries)
			r.Get("/grid", timekeepingHandler.GetGrid)
			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/summary", timekeepingHandler.GetEmployeeSummary)
				r.Get("/progress", timekeepingHandler.GetEmployeeProgress)
			})
		})
	})

	return r
}
