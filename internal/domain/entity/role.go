package entity

// Role es la enumeración cerrada de roles del sistema.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Roles devuelve todos los roles en orden estable.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

// ParseRole valida un string contra la enumeración.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Capability es un permiso con nombre que un rol puede tener.
// Los guards preguntan por capacidades, nunca comparan strings de rol.
type Capability string

const (
	CapEmployeesManage   Capability = "employees:manage"
	CapDepartmentsManage Capability = "departments:manage"
	CapLeaveReview       Capability = "leave:review"
	CapLeaveForward      Capability = "leave:forward"
	CapAttendanceViewAll Capability = "attendance:view_all"
	CapBalanceViewAll    Capability = "balance:view_all"
	CapExportAny         Capability = "export:any"
)

// RoleCapabilities es la tabla de capacidades por rol. No hay jerarquía:
// admin no hereda las de manager ni al revés. Las rutas de autoservicio
// (perfil, permisos propios, asistencia propia) solo exigen autenticación.
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapEmployeesManage,
		CapDepartmentsManage,
		CapLeaveReview,
		CapAttendanceViewAll,
		CapBalanceViewAll,
		CapExportAny,
	},
	RoleManager: {
		CapLeaveForward,
	},
	RoleEmployee: {},
}

// Can informa si el rol tiene la capacidad según la tabla estática.
func (r Role) Can(c Capability) bool {
	for _, have := range RoleCapabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}

// CapabilityOwner devuelve el rol que posee la capacidad (para el mensaje de 403).
func CapabilityOwner(c Capability) (Role, bool) {
	for _, r := range Roles() {
		if r.Can(c) {
			return r, true
		}
	}
	return "", false
}
