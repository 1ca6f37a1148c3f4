package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=alerts.go -destination=../mocks/alerts.go -package=mocks

type alertInvoiceRepo interface {
	MarkOverdue(ctx context.Context, asOf time.Time) ([]string, error)
}

type alertStockRepo interface {
	LowStockItems(ctx context.Context) ([]entity.StockItem, error)
}

type alertBusRepo interface {
	BusesWithTaxDue(ctx context.Context, deadline time.Time) ([]entity.Bus, error)
	Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error)
}

type alertScheduleRepo interface {
	ActiveSchedules(ctx context.Context) ([]entity.Schedule, error)
}

type alertTripRepo interface {
	CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error)
	TripExistsForSchedule(ctx context.Context, scheduleID uuid.UUID, tripDate time.Time) (bool, error)
}

type alertProfileRepo interface {
	ProfileByID(ctx context.Context, id uuid.UUID) (entity.Profile, error)
}

type alertNotifier interface {
	NotifyAdmins(ctx context.Context, title, message, nType, link string) error
}

type alertSettingRepo interface {
	Setting(ctx context.Context, key string) (entity.AdminSetting, error)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

// AlertService holds the periodic housekeeping jobs: overdue invoice marking,
// low stock alerts, bus tax reminders and scheduled trip generation. Each job
// is registered on the shared ticker service from main.
type AlertService struct {
	invoices  alertInvoiceRepo
	stock     alertStockRepo
	buses     alertBusRepo
	schedules alertScheduleRepo
	trips     alertTripRepo
	profiles  alertProfileRepo
	notifier  alertNotifier
	settings  alertSettingRepo
	mailer    Mailer

	taxAlertDaysAhead int
	tripGenDaysAhead  int
}

func NewAlertService(
	invoices alertInvoiceRepo,
	stock alertStockRepo,
	buses alertBusRepo,
	schedules alertScheduleRepo,
	trips alertTripRepo,
	profiles alertProfileRepo,
	notifier alertNotifier,
	settings alertSettingRepo,
	mailer Mailer,
	taxAlertDaysAhead int,
	tripGenDaysAhead int,
) *AlertService {
	return &AlertService{
		invoices:          invoices,
		stock:             stock,
		buses:             buses,
		schedules:         schedules,
		trips:             trips,
		profiles:          profiles,
		notifier:          notifier,
		settings:          settings,
		mailer:            mailer,
		taxAlertDaysAhead: taxAlertDaysAhead,
		tripGenDaysAhead:  tripGenDaysAhead,
	}
}

// MarkOverdueInvoices flips sent and partial invoices past their due date to
// overdue and tells the admins which ones moved.
func (s *AlertService) MarkOverdueInvoices(ctx context.Context) error {
	numbers, err := s.invoices.MarkOverdue(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("mark overdue: %w", err)
	}

	if len(numbers) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "invoices marked overdue", "count", len(numbers))

	return s.notifier.NotifyAdmins(ctx,
		"Invoices overdue",
		fmt.Sprintf("%d invoice(s) are now overdue: %s", len(numbers), strings.Join(numbers, ", ")),
		entity.NotificationWarning,
		"/invoices?status=overdue",
	)
}

// LowStockAlerts notifies admins about items at or under their reorder
// threshold, and emails the configured alert address when one is set.
func (s *AlertService) LowStockAlerts(ctx context.Context) error {
	items, err := s.stock.LowStockItems(ctx)
	if err != nil {
		return fmt.Errorf("low stock items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d %s left (threshold %d)",
			item.ItemName, item.Quantity, item.Unit, item.LowStockThreshold))
	}

	message := strings.Join(lines, "\n")

	err = s.notifier.NotifyAdmins(ctx,
		"Low stock",
		message,
		entity.NotificationWarning,
		"/stock?low=true",
	)
	if err != nil {
		return err
	}

	s.sendAlertMail(ctx, "Low stock alert", message)

	return nil
}

// BusTaxAlerts reminds admins about buses whose road tax falls due within the
// configured window.
func (s *AlertService) BusTaxAlerts(ctx context.Context) error {
	deadline := time.Now().AddDate(0, 0, s.taxAlertDaysAhead)

	buses, err := s.buses.BusesWithTaxDue(ctx, deadline)
	if err != nil {
		return fmt.Errorf("buses with tax due: %w", err)
	}

	if len(buses) == 0 {
		return nil
	}

	lines := make([]string, 0, len(buses))
	for _, b := range buses {
		due := "unknown"
		if b.NextTaxDueDate != nil {
			due = b.NextTaxDueDate.Format("2006-01-02")
		}

		lines = append(lines, fmt.Sprintf("%s: %s due on %s",
			b.RegistrationNumber, b.MonthlyTaxAmount.StringFixed(2), due))
	}

	message := strings.Join(lines, "\n")

	err = s.notifier.NotifyAdmins(ctx,
		"Bus tax due",
		message,
		entity.NotificationWarning,
		"/buses?tax=due",
	)
	if err != nil {
		return err
	}

	s.sendAlertMail(ctx, "Bus tax due", message)

	return nil
}

// GenerateScheduledTrips materializes trips from active schedules for the next
// N days. Already-generated dates are skipped, so the job is safe to rerun.
func (s *AlertService) GenerateScheduledTrips(ctx context.Context) error {
	schedules, err := s.schedules.ActiveSchedules(ctx)
	if err != nil {
		return fmt.Errorf("active schedules: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	created := 0

	for _, sched := range schedules {
		for day := 0; day < s.tripGenDaysAhead; day++ {
			date := today.AddDate(0, 0, day)
			if !sched.RunsOn(date) {
				continue
			}

			exists, err := s.trips.TripExistsForSchedule(ctx, sched.ID, date)
			if err != nil {
				return fmt.Errorf("trip exists check: %w", err)
			}

			if exists {
				continue
			}

			if err = s.createTripFromSchedule(ctx, sched, date); err != nil {
				slog.ErrorContext(ctx, "trip generation failed",
					"schedule_id", sched.ID, "date", date.Format("2006-01-02"), "error", err)
				continue
			}

			created++
		}
	}

	if created > 0 {
		slog.InfoContext(ctx, "scheduled trips generated", "count", created)
	}

	return nil
}

func (s *AlertService) createTripFromSchedule(ctx context.Context, sched entity.Schedule, date time.Time) error {
	bus, err := s.buses.Bus(ctx, sched.BusID)
	if err != nil {
		return fmt.Errorf("bus lookup: %w", err)
	}

	busName := bus.BusName
	if busName == "" {
		busName = bus.RegistrationNumber
	}

	trip := entity.Trip{
		TripNumber:    newTripNumber(date),
		BusID:         sched.BusID,
		DriverID:      sched.DriverID,
		RouteID:       sched.RouteID,
		ScheduleID:    sched.ID,
		StartDate:     date,
		TripDate:      &date,
		Status:        entity.TripStatusScheduled,
		TripType:      "scheduled",
		DepartureTime: sched.DepartureTime,
		ArrivalTime:   sched.ArrivalTime,

		BusNameSnapshot: busName,
	}

	if sched.IsTwoWay {
		trip.ReturnDepartureTime = sched.ReturnDepartureTime
		trip.ReturnArrivalTime = sched.ReturnArrivalTime
	}

	if sched.DriverID != uuid.Nil {
		profile, err := s.profiles.ProfileByID(ctx, sched.DriverID)
		if err != nil {
			return fmt.Errorf("driver lookup: %w", err)
		}

		trip.DriverNameSnapshot = profile.FullName
	}

	_, err = s.trips.CreateTrip(ctx, trip)

	return err
}

func (s *AlertService) sendAlertMail(ctx context.Context, subject, message string) {
	if s.mailer == nil {
		return
	}

	setting, err := s.settings.Setting(ctx, entity.SettingAdminAlertEmail)
	if err != nil || setting.Value == "" {
		return
	}

	if err = s.mailer.SendMessage(subject, message, []string{setting.Value}); err != nil {
		slog.ErrorContext(ctx, "alert mail failed", "error", err)
	}
}

func newTripNumber(date time.Time) string {
	return fmt.Sprintf("TRP-%s-%04d", date.Format("20060102"), rand.Intn(10000))
}
