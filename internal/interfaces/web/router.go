package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *usecase.AuthUseCase
	AgencyUC  *usecase.AgencyUseCase
	TenderUC  *usecase.TenderUseCase
	CatalogUC *usecase.CatalogUseCase
	Sessions  *session.Store
	Log       *logger.Logger
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.AgencyUC, deps.Sessions, deps.Log)
	dashboardHandler := NewDashboardHandler(deps.AgencyUC, deps.TenderUC, deps.Sessions, deps.Log)
	tenderHandler := NewTenderHandler(deps.TenderUC, deps.AgencyUC, deps.CatalogUC, deps.Sessions, deps.Log)
	profileHandler := NewProfileHandler(deps.AgencyUC, deps.Sessions, deps.Log)
	settingsHandler := NewSettingsHandler(deps.Sessions, deps.Log)
	statisticsHandler := NewStatisticsHandler(deps.AgencyUC, deps.Sessions, deps.Log)

	// Rutas públicas (acceso y verificación)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/token-login", authHandler.TokenLogin)
	app.Get("/register", authHandler.RegisterPage)
	app.Post("/register", authHandler.Register)
	app.Get("/verify-email", authHandler.VerifyEmailPage)
	app.Post("/verify-email/resend", authHandler.ResendVerification)
	app.Get("/auth/verify", authHandler.VerifyToken)
	app.Post("/logout", authHandler.Logout)

	// Rutas privadas (requieren sesión; sin token se redirige a /login)
	private := app.Group("/", RequireSession(deps.Sessions))

	private.Get("/", dashboardHandler.Index)

	private.Get("/tenders", tenderHandler.List)
	private.Get("/tenders/new", tenderHandler.NewForm)
	private.Post("/tenders", tenderHandler.Create)
	private.Post("/tenders/draft", tenderHandler.SaveDraft)
	private.Get("/tenders/:id", tenderHandler.Details)
	private.Get("/tenders/:id/edit", tenderHandler.EditForm)
	private.Post("/tenders/:id", tenderHandler.Update)
	private.Post("/tenders/:id/status", tenderHandler.UpdateStatus)
	private.Post("/tenders/:id/delete", tenderHandler.Delete)
	private.Post("/tenders/:id/documents", tenderHandler.UploadDocument)
	private.Get("/tenders/:id/pdf", tenderHandler.SummaryPDF)

	private.Get("/profile", profileHandler.Show)
	private.Post("/profile", profileHandler.Update)
	private.Post("/profile/license", profileHandler.UploadLicense)

	private.Get("/settings", settingsHandler.Show)
	private.Post("/settings", settingsHandler.Save)

	private.Get("/statistics", statisticsHandler.Show)

	// Cualquier ruta desconocida vuelve a la portada.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/", fiber.StatusFound)
	})
}
