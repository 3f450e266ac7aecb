package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/dto"
	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
	"github.com/hulumoya/agency-dashboard/pkg/token"
)

// AuthHandler maneja login, registro, verificación de email y logout.
type AuthHandler struct {
	authUC   *usecase.AuthUseCase
	agencyUC *usecase.AgencyUseCase
	sessions *session.Store
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(authUC *usecase.AuthUseCase, agencyUC *usecase.AgencyUseCase, sessions *session.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authUC: authUC, agencyUC: agencyUC, sessions: sessions, log: log.Component("web")}
}

// LoginPage muestra el formulario de acceso. Si la URL trae email y password
// como query params (enlaces de acceso directo del correo), intenta el login
// automáticamente en vez de renderizar.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if h.sessions.Token(c) != "" {
		return c.Redirect("/", fiber.StatusFound)
	}
	email := c.Query("email")
	password := c.Query("password")
	if email != "" && password != "" {
		return h.doLogin(c, dto.LoginForm{Email: email, Password: password})
	}
	data := view(c, h.sessions, "Sign in", "login")
	data["Form"] = dto.LoginForm{}
	data["Errors"] = map[string]string{}
	return c.Render("login", data)
}

// Login procesa el formulario de acceso.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	return h.doLogin(c, form)
}

func (h *AuthHandler) doLogin(c *fiber.Ctx, form dto.LoginForm) error {
	dto.TrimSpaces(&form.Email)
	if errs := dto.ValidateForm(form); len(errs) > 0 {
		data := view(c, h.sessions, "Sign in", "login")
		data["Form"] = form
		data["Errors"] = errs
		return c.Render("login", data)
	}

	result, err := h.authUC.Login(c.UserContext(), form.Email, form.Password)
	if err != nil {
		h.log.Warn().Err(err).Str("email", form.Email).Msg("login fallido")
		data := view(c, h.sessions, "Sign in", "login")
		data["Form"] = form
		data["Errors"] = map[string]string{
			"form": restapi.UserMessage(err, "Invalid email or password"),
		}
		return c.Render("login", data)
	}
	return h.openSession(c, result, form.Email)
}

// openSession persiste el desenlace de un login (de credenciales o de token):
// cuenta sin verificar va a la página de verificación pendiente, cuenta
// verificada guarda token + ids + perfil y entra al dashboard.
func (h *AuthHandler) openSession(c *fiber.Ctx, result *usecase.LoginResult, email string) error {
	if !result.Verified {
		if email == "" {
			email = result.Session.User.Email
		}
		_ = h.sessions.SetPendingEmail(c, email)
		return c.Redirect("/verify-email", fiber.StatusFound)
	}

	userID := result.Session.User.ID.String()
	if userID == "" {
		if claims, err := token.Inspect(result.Session.Token); err == nil {
			userID = claims.SubjectID()
		}
	}
	if err := h.sessions.SetAuth(c, result.Session.Token, userID); err != nil {
		h.log.Error().Err(err).Msg("guardar sesión tras login")
		return fiber.ErrInternalServerError
	}
	if result.Profile != nil {
		_ = h.sessions.CacheProfile(c, result.Profile)
		_ = h.sessions.SetAgencyID(c, result.Profile.ID)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// TokenLogin canjea un token de acceso de un solo uso (?token=) del correo.
func (h *AuthHandler) TokenLogin(c *fiber.Ctx) error {
	loginToken := c.Query("token")
	if loginToken == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}
	result, err := h.authUC.TokenLogin(c.UserContext(), loginToken)
	if err != nil {
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "The sign-in link is invalid or has expired"))
		return c.Redirect("/login", fiber.StatusFound)
	}
	return h.openSession(c, result, "")
}

// RegisterPage muestra el formulario de alta de agencia.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	data := view(c, h.sessions, "Register", "register")
	data["Form"] = dto.RegisterForm{}
	data["Errors"] = map[string]string{}
	return c.Render("register", data)
}

// Register procesa el alta. La cuenta queda pendiente de verificación: no se
// inicia sesión, se guarda el email pendiente y se muestra la página de espera.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	dto.TrimSpaces(&form.CompanyName, &form.TinNumber, &form.Website, &form.ContactPerson, &form.Email)

	if errs := dto.ValidateForm(form); len(errs) > 0 {
		data := view(c, h.sessions, "Register", "register")
		data["Form"] = form
		data["Errors"] = errs
		return c.Render("register", data)
	}

	if _, err := h.agencyUC.Register(c.UserContext(), form); err != nil {
		h.log.Warn().Err(err).Str("email", form.Email).Msg("registro fallido")
		data := view(c, h.sessions, "Register", "register")
		data["Form"] = form
		data["Errors"] = map[string]string{
			"form": restapi.UserMessage(err, "Registration failed. Please try again."),
		}
		return c.Render("register", data)
	}

	_ = h.sessions.SetPendingEmail(c, form.Email)
	h.sessions.PushFlash(c, "success", "Registration successful. Check your email to verify your account.")
	return c.Redirect("/verify-email", fiber.StatusFound)
}

// VerifyEmailPage muestra la espera de verificación con el email pendiente.
func (h *AuthHandler) VerifyEmailPage(c *fiber.Ctx) error {
	email := h.sessions.PendingEmail(c)
	if email == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}
	data := view(c, h.sessions, "Verify your email", "login")
	data["Email"] = email
	return c.Render("verify_email", data)
}

// ResendVerification reenvía el correo de verificación al email pendiente.
func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	email := h.sessions.PendingEmail(c)
	if email == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if err := h.authUC.ResendVerification(c.UserContext(), email); err != nil {
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not resend the verification email"))
	} else {
		h.sessions.PushFlash(c, "success", "Verification email sent. Check your inbox.")
	}
	return c.Redirect("/verify-email", fiber.StatusFound)
}

// VerifyToken canjea el token del enlace del correo de verificación. Una
// verificación exitosa puede traer sesión y perfil listos: en ese caso entra
// directo al dashboard.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	verifyToken := c.Query("token")
	if verifyToken == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}

	verification, err := h.authUC.VerifyEmail(c.UserContext(), verifyToken)
	if err != nil {
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "The verification link is invalid or has expired"))
		return c.Redirect("/login", fiber.StatusFound)
	}

	if verification.Token == "" {
		h.sessions.PushFlash(c, "success", "Email verified. You can sign in now.")
		return c.Redirect("/login", fiber.StatusFound)
	}

	userID := ""
	if verification.User != nil {
		userID = verification.User.ID.String()
	}
	if err := h.sessions.SetAuth(c, verification.Token, userID); err != nil {
		h.log.Error().Err(err).Msg("guardar sesión tras verificación")
		return fiber.ErrInternalServerError
	}
	if verification.TenderAgencyProfile != nil {
		_ = h.sessions.CacheProfile(c, verification.TenderAgencyProfile)
		_ = h.sessions.SetAgencyID(c, verification.TenderAgencyProfile.ID)
	} else if verification.AgencyID > 0 {
		_ = h.sessions.SetAgencyID(c, verification.AgencyID)
	}

	h.sessions.PushFlash(c, "success", "Email verified. Welcome!")
	return c.Redirect("/", fiber.StatusFound)
}

// Logout destruye la sesión completa y vuelve al login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_ = h.sessions.Clear(c)
	return c.Redirect("/login", fiber.StatusFound)
}
