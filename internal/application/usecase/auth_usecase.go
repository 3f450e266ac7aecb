package usecase

import (
	"context"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
	"github.com/hulumoya/agency-dashboard/internal/domain/gateway"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// Metadatos de dispositivo que el API exige en el login. El backend los usa
// para notificaciones push móviles; desde el dashboard viajan fijos.
var deviceMeta = entity.Credentials{
	FCMToken:        "dKB-Qr1oRlKZmcpB5bM7Ng:APA91bEDkEgF_hC8y6NgIFWBQ-Tq6w5dSp3ALhleFaPRQ2MDV_cwmP-YVQU2NHZ5y38H76kZrXfhVBRuquK7JLK8XgViuhQvaSpb3UkalYLo-TzsvceQpvg",
	DeviceType:      "Samsung",
	DeviceModel:     "M12",
	OperatingSystem: "ANDROID",
}

// LoginResult resultado de un login o token-login ya resuelto: la sesión del
// API, el perfil de agencia (puede ser nil si su carga falló) y si la cuenta
// está verificada para entrar al dashboard.
type LoginResult struct {
	Session  *entity.AuthSession
	Profile  *entity.Agency
	Verified bool
}

// AuthUseCase casos de uso de autenticación contra el API remoto.
type AuthUseCase struct {
	authGW   gateway.AuthGateway
	agencyGW gateway.AgencyGateway
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authGW gateway.AuthGateway, agencyGW gateway.AgencyGateway, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{authGW: authGW, agencyGW: agencyGW, log: log}
}

// Login autentica con email/password y resuelve el perfil de agencia del
// usuario. Si el perfil no carga, la sesión sigue siendo válida: se degrada a
// un warning y el perfil queda nil (se reintenta al navegar).
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	creds := deviceMeta
	creds.Email = email
	creds.Password = password

	sess, err := uc.authGW.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, sess), nil
}

// TokenLogin autentica con un token de un solo uso (enlace de email).
func (uc *AuthUseCase) TokenLogin(ctx context.Context, loginToken string) (*LoginResult, error) {
	sess, err := uc.authGW.TokenLogin(ctx, loginToken)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, sess), nil
}

func (uc *AuthUseCase) resolve(ctx context.Context, sess *entity.AuthSession) *LoginResult {
	result := &LoginResult{Session: sess, Verified: sess.User.IsVerified()}

	profile, err := uc.agencyGW.ProfileByUser(ctx, sess.User.ID.String())
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", sess.User.ID.String()).
			Msg("no se pudo cargar el perfil de agencia tras el login")
		return result
	}
	result.Profile = profile
	return result
}

// VerifyEmail canjea el token del enlace de verificación.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, verifyToken string) (*entity.AuthVerification, error) {
	return uc.authGW.VerifyEmail(ctx, verifyToken)
}

// ResendVerification reenvía el correo de verificación a email.
func (uc *AuthUseCase) ResendVerification(ctx context.Context, email string) error {
	return uc.authGW.ResendVerification(ctx, email)
}
