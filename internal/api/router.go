package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/busmanager/backend/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)
				r.Get("/me", h.Me)
				r.Put("/me", h.UpdateProfile)
				r.Put("/password", h.ChangePassword)
				r.Put("/roles", h.SetRole)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Get("/drivers", h.Drivers)
			r.Get("/states", h.States)

			r.Route("/buses", func(r chi.Router) {
				r.Post("/", h.CreateBus)
				r.Get("/", h.Buses)
				r.Post("/tax-records/{recordId}/pay", h.MarkTaxPaid)
				r.Get("/{id}", h.Bus)
				r.Put("/{id}", h.UpdateBus)
				r.Delete("/{id}", h.DeleteBus)
				r.Post("/{id}/tax-records", h.CreateTaxRecord)
				r.Get("/{id}/tax-records", h.TaxRecords)
			})

			r.Route("/routes", func(r chi.Router) {
				r.Post("/", h.CreateRoute)
				r.Get("/", h.Routes)
				r.Get("/{id}", h.Route)
				r.Put("/{id}", h.UpdateRoute)
				r.Delete("/{id}", h.DeleteRoute)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", h.CreateSchedule)
				r.Get("/", h.Schedules)
				r.Get("/{id}", h.Schedule)
				r.Put("/{id}", h.UpdateSchedule)
				r.Delete("/{id}", h.DeleteSchedule)
			})

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", h.CreateTrip)
				r.Get("/", h.Trips)
				r.Get("/{id}", h.Trip)
				r.Put("/{id}", h.UpdateTrip)
				r.Delete("/{id}", h.DeleteTrip)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", h.SubmitExpense)
				r.Get("/", h.Expenses)
				r.Get("/categories", h.ExpenseCategories)
				r.Post("/categories", h.CreateExpenseCategory)
				r.Get("/{id}", h.Expense)
				r.Put("/{id}", h.UpdateExpense)
				r.Delete("/{id}", h.DeleteExpense)
				r.Post("/{id}/review", h.ReviewExpense)
			})

			r.Route("/stock", func(r chi.Router) {
				r.Post("/", h.CreateStockItem)
				r.Get("/", h.StockItems)
				r.Get("/{id}", h.StockItem)
				r.Put("/{id}", h.UpdateStockItem)
				r.Delete("/{id}", h.DeleteStockItem)
				r.Post("/{id}/adjust", h.AdjustStockItem)
				r.Get("/{id}/transactions", h.StockItemTransactions)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", h.CreateInvoice)
				r.Get("/", h.Invoices)
				r.Get("/{id}", h.Invoice)
				r.Put("/{id}", h.UpdateInvoice)
				r.Delete("/{id}", h.DeleteInvoice)
				r.Post("/{id}/payments", h.AddPayment)
				r.Put("/{id}/status", h.SetInvoiceStatus)
			})

			r.Route("/repairs", func(r chi.Router) {
				r.Post("/", h.SubmitRepairRecord)
				r.Get("/", h.RepairRecords)
				r.Get("/{id}", h.RepairRecord)
				r.Put("/{id}", h.UpdateRepairRecord)
				r.Delete("/{id}", h.DeleteRepairRecord)
				r.Post("/{id}/review", h.ReviewRepairRecord)
			})

			r.Route("/repair-organizations", func(r chi.Router) {
				r.Post("/", h.CreateRepairOrg)
				r.Get("/", h.RepairOrgs)
				r.Get("/{id}", h.RepairOrg)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notifications)
				r.Post("/", h.Notify)
				r.Get("/unread-count", h.UnreadNotificationCount)
				r.Post("/read-all", h.MarkAllNotificationsRead)
				r.Post("/{id}/read", h.MarkNotificationRead)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings)
				r.Get("/{key}", h.Setting)
				r.Put("/{key}", h.UpsertSetting)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", h.Upload)
				r.Delete("/{name}", h.DeleteUpload)
			})
		})

		r.Route("/private/v1/jobs", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/{name}", h.RunJob)
		})
	})

	// stored documents are served as-is
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploads.Dir())))
	mux.Handle("/uploads/*", fs)

	return mux
}
