package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/app"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/config"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/controllers"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/dtos"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/holidays"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/middleware"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/repositories"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/routes"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/services"
	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize rondas-service:", err)
	}
	defer application.Close()

	// Repositories
	roundRepo := repositories.NewRoundRepository(application.DB)
	surgeryRepo := repositories.NewSurgeryRepository(application.DB)
	serviceRepo := repositories.NewServiceRepository(application.DB)

	if cfg.SeedCatalog {
		if err := app.SeedServiceCatalog(context.Background(), serviceRepo); err != nil {
			utils.Logger.Fatal("Failed to seed service catalog:", err)
		}
	}

	// Services
	calendar := holidays.Colombia
	panelService := services.NewPanelService(calendar)
	roundService := services.NewRoundService(roundRepo, cfg.Location)
	surgeryService := services.NewSurgeryService(surgeryRepo)
	catalogService := services.NewCatalogService(serviceRepo)

	// Controllers
	healthController := controllers.NewHealthController(application)
	panelController := controllers.NewPanelController(panelService, cfg.Location)
	holidaysController := controllers.NewHolidaysController(calendar)
	roundsController := controllers.NewRoundsController(roundService, cfg.Location)
	surgeryController := controllers.NewSurgeryController(surgeryService)
	catalogController := controllers.NewCatalogController(catalogService)

	// Router setup
	router := mux.NewRouter()

	// Public Routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Secured routes
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	secured.HandleFunc(routes.Panel, panelController.GetPanelHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.HolidaysYear, holidaysController.ListYearHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.HolidaysMonth, holidaysController.ListMonthHandler).Methods(http.MethodGet)

	// /rounds/adjust must register before /rounds/{id} so "adjust" is
	// not swallowed as an id.
	secured.HandleFunc(routes.RoundsAdjust, holidaysController.AdjustDateHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Rounds, roundsController.CreateRoundHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Rounds, roundsController.ListRoundsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.RoundsByID, roundsController.GetRoundHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.RoundsByID, roundsController.UpdateRoundHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.RoundsByID, roundsController.DeleteRoundHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Surgery, surgeryController.CreateSurgeryRecordHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Surgery, surgeryController.ListSurgeryRecordsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SurgeryByID, surgeryController.GetSurgeryRecordHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SurgeryByID, surgeryController.UpdateSurgeryRecordHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.SurgeryByID, surgeryController.DeleteSurgeryRecordHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Services, catalogController.ListServicesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ServiceActive, catalogController.SetServiceActiveHandler).Methods(http.MethodPut)

	// Cron job setup
	c := cron.New(cron.WithLocation(cfg.Location))

	// Warm the holiday cache for the current and next year each night,
	// and log where the next round lands.
	_, err = c.AddFunc("0 1 * * *", func() {
		now := time.Now().In(cfg.Location)
		for _, y := range []int{now.Year(), now.Year() + 1} {
			if _, err := calendar.ForYear(y); err != nil {
				utils.Logger.WithError(err).Errorf("Failed to warm holiday cache for %d", y)
			}
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		effective, shifted, err := calendar.AdjustRoundDate(today)
		if err != nil {
			utils.Logger.WithError(err).Error("Failed to compute next round date")
			return
		}
		utils.Logger.Infof("Next round date: %s (shifted=%t)", dtos.FormatDate(effective), shifted)
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule holiday cache warm cron")
	}

	c.Start()
	utils.Logger.Info("Scheduled nightly holiday cache warm")

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("rondas-service failed to start:", err)
	}
}
