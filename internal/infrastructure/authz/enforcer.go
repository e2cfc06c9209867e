// Package authz respalda con casbin la pregunta "¿el rol tiene la capacidad X?".
// Las políticas salen de entity.RoleCapabilities; no hay herencia entre roles.
package authz

import (
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/jhoicas/rrhh-api/internal/domain/entity"
)

// Modelo RBAC plano: coincidencia exacta de rol, recurso y acción.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Enforcer evalúa capacidades por rol.
type Enforcer struct {
	mu  sync.RWMutex
	enf *casbin.Enforcer
}

// NewEnforcer construye el enforcer con una política por cada par (rol, capacidad).
func NewEnforcer(table map[entity.Role][]entity.Capability) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: modelo inválido: %w", err)
	}
	enf, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authz: crear enforcer: %w", err)
	}
	for role, caps := range table {
		for _, c := range caps {
			obj, act := split(c)
			if _, err := enf.AddPolicy(string(role), obj, act); err != nil {
				return nil, fmt.Errorf("authz: política %s %s: %w", role, c, err)
			}
		}
	}
	return &Enforcer{enf: enf}, nil
}

// Allowed true si el rol tiene la capacidad.
func (e *Enforcer) Allowed(role entity.Role, c entity.Capability) (bool, error) {
	obj, act := split(c)
	e.mu.RLock()
	defer e.mu.RUnlock()
	ok, err := e.enf.Enforce(string(role), obj, act)
	if err != nil {
		return false, fmt.Errorf("authz: enforce: %w", err)
	}
	return ok, nil
}

// split "leave:review" -> ("leave", "review").
func split(c entity.Capability) (string, string) {
	obj, act, found := strings.Cut(string(c), ":")
	if !found {
		return obj, "*"
	}
	return obj, act
}
