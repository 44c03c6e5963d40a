package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"wrapsite_backend/internal/controller"
	"wrapsite_backend/internal/middleware"
	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/config"
	"wrapsite_backend/pkg/cron"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/email"
	"wrapsite_backend/pkg/realtime"
	"wrapsite_backend/pkg/seed"
	"wrapsite_backend/pkg/utils/jwt"
	"wrapsite_backend/pkg/utils/storage"
	"wrapsite_backend/pkg/webhook"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)

	// Public submission routes (marketing site forms)
	submissions := api.Group("/submissions")
	submissions.Post("/configurator", controller.CreateConfiguratorSubmission)
	submissions.Post("/configurator/:submission_id/complete", controller.CompleteConfiguratorSubmission)
	submissions.Get("/configurator/:submission_id/result", controller.WaitConfiguratorResult)
	submissions.Post("/contact", controller.CreateContactSubmission)
	submissions.Post("/keuzehulp", controller.CreateKeuzehulpSubmission)
	submissions.Post("/campaign", controller.CreateCampaignSubmission)
	submissions.Post("/uploads/:kind", controller.UploadSubmissionPhoto)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)

	// Lead routes
	leads := protected.Group("/leads")
	leads.Get("/", controller.GetLeads)
	leads.Get("/:source/:id", controller.GetLead)
	leads.Put("/:source/:id/status", controller.UpdateLeadStatus)
	leads.Put("/:source/:id/notes", controller.UpdateLeadNotes)
	leads.Delete("/:source/:id", controller.DeleteLead)

	// Customer routes
	customers := protected.Group("/customers")
	customers.Get("/", controller.ListCustomers)
	customers.Post("/", controller.CreateCustomer)
	customers.Post("/convert", controller.ConvertLead)
	customers.Get("/:id", controller.GetCustomer)
	customers.Put("/:id", controller.UpdateCustomer)
	customers.Delete("/:id", controller.DeleteCustomer)
	customers.Post("/:id/photos", controller.UploadCustomerPhoto)

	// Appointment routes
	appointments := protected.Group("/appointments")
	appointments.Get("/", controller.ListAppointments)
	appointments.Post("/", controller.CreateAppointment)
	appointments.Get("/:id", controller.GetAppointment)
	appointments.Put("/:id", controller.UpdateAppointment)
	appointments.Delete("/:id", controller.DeleteAppointment)
	appointments.Post("/:id/review-request", controller.SendReviewRequest)

	// Reminder routes
	appointments.Get("/:id/reminders", controller.ListReminders)
	appointments.Get("/:id/reminders/calendar", controller.GetReminderCalendar)
	appointments.Post("/:id/reminders", controller.ScheduleReminders)
	appointments.Post("/:id/reminders/send-all", controller.BulkSendReminders)
	appointments.Post("/:id/reminders/cancel-all", controller.CancelAllReminders)
	appointments.Post("/reminders/:reminder_id/send", controller.SendReminder)
	appointments.Post("/reminders/:reminder_id/cancel", controller.CancelReminder)
	appointments.Delete("/reminders/:reminder_id", controller.DeleteReminder)

	// Contact directory
	protected.Get("/contacts/search", controller.SearchContacts)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
	dashboard.Get("/stats", controller.GetDashboardStats)
}

func main() {
	cfg := config.Load()

	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set in .env")
	}
	jwt.Init(cfg.JWT.Secret)

	if err := email.InitEmailService(cfg.Email, cfg.SMTP); err != nil {
		log.Fatal("Could not initialize email service:", err)
	}

	webhook.InitClient(cfg.Webhooks)
	realtime.InitFeed(cfg.Redis)
	controller.InitLeadController()
	controller.InitSubmissionController(cfg.Email)
	cron.InitReminderDispatchCron()

	if err := storage.InitStorage(cfg.Storage); err != nil {
		log.Printf("Storage init warning: %v", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.ConfiguratorLead{},
		&model.CampaignLead{},
		&model.ContactLead{},
		&model.KeuzehulpLead{},
		&model.Customer{},
		&model.Appointment{},
		&model.AppointmentReminder{},
		&model.AIUsageRecord{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedAdminUser(database.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
