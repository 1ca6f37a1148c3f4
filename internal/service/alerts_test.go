package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/mocks"
	"github.com/busmanager/backend/internal/service"
)

type alertMocks struct {
	invoices  *mocks.MockalertInvoiceRepo
	stock     *mocks.MockalertStockRepo
	buses     *mocks.MockalertBusRepo
	schedules *mocks.MockalertScheduleRepo
	trips     *mocks.MockalertTripRepo
	profiles  *mocks.MockalertProfileRepo
	notifier  *mocks.MockalertNotifier
	settings  *mocks.MockalertSettingRepo
	mailer    *mocks.MockMailer
}

func newAlertMocks(ctrl *gomock.Controller) alertMocks {
	return alertMocks{
		invoices:  mocks.NewMockalertInvoiceRepo(ctrl),
		stock:     mocks.NewMockalertStockRepo(ctrl),
		buses:     mocks.NewMockalertBusRepo(ctrl),
		schedules: mocks.NewMockalertScheduleRepo(ctrl),
		trips:     mocks.NewMockalertTripRepo(ctrl),
		profiles:  mocks.NewMockalertProfileRepo(ctrl),
		notifier:  mocks.NewMockalertNotifier(ctrl),
		settings:  mocks.NewMockalertSettingRepo(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
	}
}

func (m alertMocks) newService(taxDays, tripDays int) *service.AlertService {
	return service.NewAlertService(
		m.invoices, m.stock, m.buses, m.schedules, m.trips,
		m.profiles, m.notifier, m.settings, m.mailer,
		taxDays, tripDays,
	)
}

func TestAlertService_MarkOverdueInvoices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("notifies on overdue invoices", func(t *testing.T) {
		t.Parallel()

		m := newAlertMocks(gomock.NewController(t))
		m.invoices.EXPECT().MarkOverdue(ctx, gomock.Any()).Return([]string{"INV-1", "INV-2"}, nil)
		m.notifier.EXPECT().NotifyAdmins(ctx, "Invoices overdue", gomock.Any(), entity.NotificationWarning, gomock.Any()).Return(nil)

		require.NoError(t, m.newService(7, 3).MarkOverdueInvoices(ctx))
	})

	t.Run("silent when nothing moved", func(t *testing.T) {
		t.Parallel()

		m := newAlertMocks(gomock.NewController(t))
		m.invoices.EXPECT().MarkOverdue(ctx, gomock.Any()).Return(nil, nil)

		require.NoError(t, m.newService(7, 3).MarkOverdueInvoices(ctx))
	})
}

func TestAlertService_LowStockAlerts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	m := newAlertMocks(gomock.NewController(t))
	m.stock.EXPECT().LowStockItems(ctx).Return([]entity.StockItem{
		{ItemName: "engine oil", Quantity: 2, Unit: "litre", LowStockThreshold: 5},
	}, nil)
	m.notifier.EXPECT().NotifyAdmins(ctx, "Low stock", gomock.Any(), entity.NotificationWarning, gomock.Any()).Return(nil)
	m.settings.EXPECT().Setting(ctx, entity.SettingAdminAlertEmail).
		Return(entity.AdminSetting{Key: entity.SettingAdminAlertEmail, Value: "ops@example.com"}, nil)
	m.mailer.EXPECT().SendMessage("Low stock alert", gomock.Any(), []string{"ops@example.com"}).Return(nil)

	require.NoError(t, m.newService(7, 3).LowStockAlerts(ctx))
}

func TestAlertService_GenerateScheduledTrips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	busID := uuid.Must(uuid.NewV4())
	routeID := uuid.Must(uuid.NewV4())
	driverID := uuid.Must(uuid.NewV4())
	scheduleID := uuid.Must(uuid.NewV4())

	// Runs every day, so every date in the window matches.
	sched := entity.Schedule{
		ID:            scheduleID,
		BusID:         busID,
		RouteID:       routeID,
		DriverID:      driverID,
		DaysOfWeek:    []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		DepartureTime: "06:30",
		ArrivalTime:   "14:00",
		IsActive:      true,
	}

	m := newAlertMocks(gomock.NewController(t))
	m.schedules.EXPECT().ActiveSchedules(ctx).Return([]entity.Schedule{sched}, nil)

	// Day one already has a trip, day two gets a fresh one.
	gomock.InOrder(
		m.trips.EXPECT().TripExistsForSchedule(ctx, scheduleID, gomock.Any()).Return(true, nil),
		m.trips.EXPECT().TripExistsForSchedule(ctx, scheduleID, gomock.Any()).Return(false, nil),
	)
	m.buses.EXPECT().Bus(ctx, busID).Return(entity.Bus{
		ID:                 busID,
		RegistrationNumber: "KA-01-AB-1234",
	}, nil)
	m.profiles.EXPECT().ProfileByID(ctx, driverID).Return(entity.Profile{
		ID:       driverID,
		FullName: "Ravi Kumar",
	}, nil)
	m.trips.EXPECT().CreateTrip(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, trip entity.Trip) (entity.Trip, error) {
			require.Equal(t, scheduleID, trip.ScheduleID)
			require.Equal(t, entity.TripStatusScheduled, trip.Status)
			require.Equal(t, "06:30", trip.DepartureTime)
			require.Equal(t, "KA-01-AB-1234", trip.BusNameSnapshot)
			require.Equal(t, "Ravi Kumar", trip.DriverNameSnapshot)
			require.NotEmpty(t, trip.TripNumber)
			require.NotNil(t, trip.TripDate)

			trip.ID = uuid.Must(uuid.NewV4())
			return trip, nil
		})

	require.NoError(t, m.newService(7, 2).GenerateScheduledTrips(ctx))
}

func TestAlertService_BusTaxAlerts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	due := time.Now().AddDate(0, 0, 3)

	m := newAlertMocks(gomock.NewController(t))
	m.buses.EXPECT().BusesWithTaxDue(ctx, gomock.Any()).Return([]entity.Bus{
		{RegistrationNumber: "KA-01-AB-1234", NextTaxDueDate: &due},
	}, nil)
	m.notifier.EXPECT().NotifyAdmins(ctx, "Bus tax due", gomock.Any(), entity.NotificationWarning, gomock.Any()).Return(nil)
	m.settings.EXPECT().Setting(ctx, entity.SettingAdminAlertEmail).Return(entity.AdminSetting{}, entity.ErrNotFound)

	require.NoError(t, m.newService(7, 3).BusTaxAlerts(ctx))
}
