package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
	"github.com/jhoicas/rrhh-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Mensajes devueltos al cliente.
const (
	MsgMissingCredentials = "Missing email or password"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidToken       = "Invalid or expired token"
	MsgRevokedToken       = "Token has been revoked"
	MsgUnknownUser        = "User no longer exists"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, verificación de sesión y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	revoked  repository.TokenRevocationStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revoked repository.TokenRevocationStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, revoked: revoked, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.Invalid(MsgMissingCredentials)
	}
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.Unauthorized(MsgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthorized(MsgInvalidCredentials)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EmpID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.SessionUser{
			ID:    user.ID,
			EmpID: user.EmpID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

// Authenticate valida firma y expiración del token y rechaza los JTI revocados.
// El rol y el emp_id salen del usuario actual en la base, no del token: un cambio de rol
// aplica en la siguiente petición.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.Unauthorized(MsgInvalidToken)
	}
	revoked, err := uc.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("consultar revocación: %w", err)
	}
	if revoked {
		return nil, domain.Unauthorized(MsgRevokedToken)
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.Unauthorized(MsgUnknownUser)
	}
	claims.Role = string(user.Role)
	claims.EmpID = user.EmpID
	return claims, nil
}

// Logout revoca el JTI del token hasta su expiración natural.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.Unauthorized(MsgInvalidToken)
	}
	if err := uc.revoked.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

// HashPassword hashea con bcrypt (costo por defecto). Lo usan el alta de empleados y el seed.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
