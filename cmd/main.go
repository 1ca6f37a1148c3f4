package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/busmanager/backend/internal/api"
	"github.com/busmanager/backend/internal/clients/gomail"
	"github.com/busmanager/backend/internal/repository"
	"github.com/busmanager/backend/internal/service"
	"github.com/busmanager/backend/internal/storage"
	"github.com/busmanager/backend/pkg/broker"
	"github.com/busmanager/backend/pkg/config"
	"github.com/busmanager/backend/pkg/job"
	"github.com/busmanager/backend/pkg/logger"
	"github.com/busmanager/backend/pkg/postgres"
)

const (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.ConnectToPostgres(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	users := repository.NewUserRepository(pool)
	buses := repository.NewBusRepository(pool)
	routes := repository.NewRouteRepository(pool)
	schedules := repository.NewScheduleRepository(pool)
	trips := repository.NewTripRepository(pool)
	expenses := repository.NewExpenseRepository(pool)
	stock := repository.NewStockRepository(pool)
	invoices := repository.NewInvoiceRepository(pool)
	repairs := repository.NewRepairRepository(pool)
	notifications := repository.NewNotificationRepository(pool)
	settings := repository.NewSettingRepository(pool)

	tokens := service.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)

	var producer service.Producer = service.NopProducer{}

	if cfg.Kafka.Enabled {
		kafkaProducer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.FleetEventsTopic)
		defer kafkaProducer.Close()

		producer = kafkaProducer
	}

	var mailer service.Mailer
	if cfg.SMTP.Enabled {
		mailer = gomail.New(cfg.SMTP)
	}

	authService := service.NewAuthService(users, tokens)
	busService := service.NewBusService(buses, producer)
	routeService := service.NewRouteService(routes)
	scheduleService := service.NewScheduleService(schedules)
	tripService := service.NewTripService(trips, buses, users, producer)
	expenseService := service.NewExpenseService(expenses, producer)
	stockService := service.NewStockService(stock, producer)
	invoiceService := service.NewInvoiceService(invoices, producer)
	repairService := service.NewRepairService(repairs, buses, producer)
	notificationService := service.NewNotificationService(notifications)
	settingService := service.NewSettingService(settings)

	alertService := service.NewAlertService(
		invoices,
		stock,
		buses,
		schedules,
		trips,
		users,
		notifications,
		settings,
		mailer,
		cfg.Jobs.TaxAlertDaysAhead,
		cfg.Jobs.TripGenDaysAhead,
	)

	uploads, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.MaxSize)
	panicOnErr("create upload store", err)

	{
		interval := time.Duration(cfg.Jobs.IntervalMinutes) * time.Minute

		job.NewService().
			TryRegisterJob(cfg.Jobs.Enabled, "mark overdue invoices", interval, alertService.MarkOverdueInvoices).
			TryRegisterJob(cfg.Jobs.Enabled, "low stock alerts", interval, alertService.LowStockAlerts).
			TryRegisterJob(cfg.Jobs.Enabled, "bus tax alerts", interval, alertService.BusTaxAlerts).
			TryRegisterJob(cfg.Jobs.Enabled, "generate scheduled trips", interval, alertService.GenerateScheduledTrips).
			Start(ctx)
	}

	handler := api.NewHandler(
		authService,
		busService,
		routeService,
		scheduleService,
		tripService,
		expenseService,
		stockService,
		invoiceService,
		repairService,
		notificationService,
		settingService,
		uploads,
		alertService,
	)
	mw := api.NewMiddleware(tokens, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
