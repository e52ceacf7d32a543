package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/session"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	sessions *session.Store,
	charger payment.DepositCharger,
	uploader *media.Uploader,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	staffHandler := handlers.NewStaffHandler(db)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(db)
	calendarHandler := handlers.NewCalendarHandler(db)
	statsHandler := handlers.NewStatsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	mediaHandler := handlers.NewMediaHandler(db, uploader)

	publicHandler := handlers.NewPublicHandler(db)
	wizardHandler := handlers.NewWizardHandler(db, sessions, charger, cfg)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			// descoberta de salões
			publicAPI.GET("/salons", publicHandler.ListSalons)

			publicAPI.GET("/:slug/staff", publicHandler.ListStaff)
			publicAPI.GET("/:slug/treatments", publicHandler.ListTreatments)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)

			// fluxo de agendamento em seis passos
			publicAPI.POST("/:slug/booking", wizardHandler.Start)

			bookingAPI := publicAPI.Group("/:slug/booking/:session")
			{
				bookingAPI.GET("", wizardHandler.State)
				bookingAPI.POST("/stylist", wizardHandler.SelectStylist)
				bookingAPI.POST("/treatment", wizardHandler.SelectTreatment)
				bookingAPI.POST("/datetime", wizardHandler.SelectDateTime)
				bookingAPI.POST("/details", wizardHandler.SubmitDetails)
				bookingAPI.POST("/deposit", wizardHandler.Deposit)
				bookingAPI.POST("/deposit/skip", wizardHandler.SkipDeposit)
				bookingAPI.POST("/back", wizardHandler.Back)
				bookingAPI.POST("/complete", wizardHandler.Complete)
			}
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)
			secured.POST("/me/salon/logo", mediaHandler.UploadLogo)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)

			secured.GET("/me/treatments", treatmentHandler.List)
			secured.POST("/me/treatments", treatmentHandler.Create)
			secured.PATCH("/me/treatments/:id", treatmentHandler.Update)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			// ------------------------------
			// AGENDA (DIA / SEMANA)
			// ------------------------------
			secured.GET("/me/calendar/day", calendarHandler.Day)
			secured.GET("/me/calendar/week", calendarHandler.Week)

			secured.GET("/me/stats", statsHandler.Dashboard)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
