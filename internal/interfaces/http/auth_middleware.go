package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/pkg/jwt"
)

// Locals keys con la identidad del llamador en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmpID  = "emp_id"
	LocalRole   = "role"
	LocalClaims = "claims"
)

// tokenVerifier valida firma, expiración y revocación. Lo implementa *auth.AuthUseCase.
type tokenVerifier interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// capabilityChecker responde si un rol tiene una capacidad. Lo implementa *authz.Enforcer.
type capabilityChecker interface {
	Allowed(role entity.Role, c entity.Capability) (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT y carga user_id, emp_id y role en c.Locals.
func AuthMiddleware(verifier tokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "Missing authorization header"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "Authorization header must be: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "Empty token"})
		}
		claims, err := verifier.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: domain.Message(err)})
			}
			return writeError(c, err)
		}
		if claims.Role == "" || claims.UserID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "Token has no identity or role"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmpID, claims.EmpID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireCapability autoriza según la capacidad del rol del token. Debe ir DESPUÉS de AuthMiddleware.
// El 403 nombra el rol dueño de la capacidad ("Admin access required").
func RequireCapability(checker capabilityChecker, capability entity.Capability) fiber.Handler {
	denied := deniedMessage(capability)
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "Token has no identity or role"})
		}
		ok, err := checker.Allowed(entity.Role(role), capability)
		if err != nil {
			return writeError(c, err)
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: denied})
		}
		return c.Next()
	}
}

func deniedMessage(capability entity.Capability) string {
	owner, ok := entity.CapabilityOwner(capability)
	if !ok {
		return "Access denied"
	}
	return cases.Title(language.English).String(string(owner)) + " access required"
}

// GetUserID devuelve el id del usuario autenticado (0 si no pasó por AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetEmpID devuelve el código de empleado del token.
func GetEmpID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmpID).(string)
	return s
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetClaims devuelve los claims completos (los usa logout para revocar el JTI).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	cl, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return cl
}
