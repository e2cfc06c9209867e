package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-api/internal/application/auth"
	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/export"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/authz"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/csvexport"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/memory"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/pdf"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/rrhh-api/internal/interfaces/http"
	"github.com/jhoicas/rrhh-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "secret123"

var fixedNow = time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type apiFixture struct {
	app   *fiber.App
	store *memory.Store
	admin string
	mgr   string
	emp   string
	other string
}

// newAPI arma la app completa sobre el store en memoria con admin, manager y dos empleados.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	balances := usecase.NewBalanceUseCase(s.Users(), s.Leaves(), 20, fixedClock)
	employees := usecase.NewEmployeeUseCase(s.Users(), s.Profiles(), s.Departments(), s.Tx(), balances, fixedClock)
	departments := usecase.NewDepartmentUseCase(s.Departments(), fixedClock)
	enforcer, err := authz.NewEnforcer(entity.RoleCapabilities)
	require.NoError(t, err)

	deps := apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(s.Users(), s.Revocations(), auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "rrhh-api-test"}),
		EmployeeUC:   employees,
		DepartmentUC: departments,
		LeaveUC:      usecase.NewLeaveUseCase(s.Leaves(), balances, nil, fixedClock),
		AttendanceUC: usecase.NewAttendanceUseCase(s.Users(), s.Attendance(), fixedClock),
		BalanceUC:    balances,
		ProfileUC:    usecase.NewProfileUseCase(s.Users(), s.Profiles(), s.Departments(), balances),
		ExportUC: export.NewUseCase(export.Repos{
			Users:       s.Users(),
			Profiles:    s.Profiles(),
			Departments: s.Departments(),
			Leaves:      s.Leaves(),
			Attendance:  s.Attendance(),
		}, balances, map[export.Format]export.Renderer{
			export.FormatCSV:  csvexport.NewWriter(),
			export.FormatPDF:  pdf.NewMarotoPDFGenerator(),
			export.FormatXLSX: xlsx.NewGenerator(),
		}, nil),
		Authorizer: enforcer,
	}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, deps)

	dept, err := departments.Create(ctx, dto.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	for _, u := range []struct{ empID, role string }{
		{"A001", "admin"}, {"M001", "manager"}, {"E001", "employee"}, {"E002", "employee"},
	} {
		empID, role := u.empID, u.role
		_, err := employees.Create(ctx, dto.CreateEmployeeRequest{
			EmpID:        &empID,
			Email:        strp(strings.ToLower(empID) + "@example.com"),
			Password:     strp(testPassword),
			Role:         &role,
			DepartmentID: &dept.ID,
			FullName:     strp("Persona " + empID),
		})
		require.NoError(t, err)
	}

	f := &apiFixture{app: app, store: s}
	f.admin = f.login(t, "a001@example.com")
	f.mgr = f.login(t, "m001@example.com")
	f.emp = f.login(t, "e001@example.com")
	f.other = f.login(t, "e002@example.com")
	return f
}

func strp(s string) *string { return &s }

func (f *apiFixture) login(t *testing.T, email string) string {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": email, "password": testPassword})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// do lanza la petición; body nil no envía cuerpo.
func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func assertError(t *testing.T, resp *http.Response, status int, code, msg string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, code, out.Code)
	if msg != "" {
		assert.Equal(t, msg, out.Error)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PasswordIncorrecto(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "e001@example.com", "password": "wrong-pass"})
	assertError(t, resp, fiber.StatusUnauthorized, "UNAUTHORIZED", auth.MsgInvalidCredentials)
}

func TestLogin_EmailDesconocidoMismoError(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "nadie@example.com", "password": testPassword})
	assertError(t, resp, fiber.StatusUnauthorized, "UNAUTHORIZED", auth.MsgInvalidCredentials)
}

func TestLogin_SinCredenciales(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/login", "", map[string]string{})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", auth.MsgMissingCredentials)
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	f := newAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assertError(t, resp, fiber.StatusBadRequest, "INVALID_BODY", "")
}

func TestLogout_RevocaToken(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodGet, "/api/profile", f.emp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/logout", f.emp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/profile", f.emp, nil)
	assertError(t, resp, fiber.StatusUnauthorized, "INVALID_TOKEN", auth.MsgRevokedToken)

	// otra sesión del mismo usuario sigue viva
	fresh := f.login(t, "e001@example.com")
	resp = f.do(t, http.MethodGet, "/api/profile", fresh, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRutaProtegida_SinToken(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodGet, "/api/leave", "", nil)
	assertError(t, resp, fiber.StatusUnauthorized, "MISSING_TOKEN", "")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards por capacidad
// ──────────────────────────────────────────────────────────────────────────────

func TestGuards_MensajesDe403(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/api/admin/employees", f.emp, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Admin access required")

	resp = f.do(t, http.MethodGet, "/api/admin/employees", f.mgr, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Admin access required")

	resp = f.do(t, http.MethodPut, "/api/manager/leave-requests/1", f.emp, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Manager access required")

	// sin jerarquía: el admin no reenvía como manager
	resp = f.do(t, http.MethodPut, "/api/manager/leave-requests/1", f.admin, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Manager access required")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de vacaciones
// ──────────────────────────────────────────────────────────────────────────────

func submitLeave(t *testing.T, f *apiFixture, token, start, end, reason string) dto.SubmitLeaveResponse {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/leave", token, map[string]string{
		"start_date": start, "end_date": end, "reason": reason,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.SubmitLeaveResponse
	decode(t, resp, &out)
	return out
}

func TestLeave_FlujoCompleto(t *testing.T) {
	f := newAPI(t)

	sub := submitLeave(t, f, f.emp, "2024-01-10", "2024-01-12", "trip")
	assert.Equal(t, "pending_manager", sub.Status)
	assert.Equal(t, usecase.MsgLeaveSubmitted, sub.Message)

	path := "/api/manager/leave-requests/" + itoa(sub.ID)
	resp := f.do(t, http.MethodPut, path, f.mgr, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var fwd dto.LeaveStatusResponse
	decode(t, resp, &fwd)
	assert.Equal(t, "pending_admin", fwd.Status)

	resp = f.do(t, http.MethodPut, "/api/admin/leave-requests/"+itoa(sub.ID), f.admin, map[string]string{"status": "approved"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var done dto.LeaveStatusResponse
	decode(t, resp, &done)
	assert.Equal(t, "approved", done.Status)

	resp = f.do(t, http.MethodGet, "/api/leave", f.emp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var own dto.LeaveRequestListResponse
	decode(t, resp, &own)
	require.Len(t, own.LeaveRequests, 1)
	assert.Equal(t, "approved", own.LeaveRequests[0].Status)
}

func TestLeave_SaldoSoloDescuentaAprobadasDelAnio(t *testing.T) {
	f := newAPI(t)
	a := submitLeave(t, f, f.emp, "2024-03-04", "2024-03-08", "vacaciones")
	submitLeave(t, f, f.emp, "2024-04-01", "2024-04-02", "pendiente")
	b := submitLeave(t, f, f.emp, "2023-12-28", "2023-12-29", "año anterior")
	for _, id := range []int64{a.ID, b.ID} {
		resp := f.do(t, http.MethodPut, "/api/admin/leave-requests/"+itoa(id), f.admin, map[string]string{"status": "approved"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp := f.do(t, http.MethodGet, "/api/leave-balance", f.emp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var bal dto.LeaveBalanceResponse
	decode(t, resp, &bal)
	assert.Equal(t, "E001", bal.EmpID)
	assert.Equal(t, 2024, bal.Year)
	assert.Equal(t, 15, bal.LeaveBalance)

	resp = f.do(t, http.MethodGet, "/api/admin/leave-balance/E001", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &bal)
	assert.Equal(t, 15, bal.LeaveBalance)
}

func TestLeave_InicioPosteriorAlFin(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/leave", f.emp, map[string]string{
		"start_date": "2024-01-12", "end_date": "2024-01-10", "reason": "x",
	})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", usecase.MsgStartAfterEnd)
}

func TestLeave_MotivoVacioSeAcepta(t *testing.T) {
	f := newAPI(t)
	sub := submitLeave(t, f, f.emp, "2024-01-10", "2024-01-12", "")
	assert.Equal(t, "pending_manager", sub.Status)
}

func TestLeave_CampoFaltanteYFormato(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/leave", f.emp, map[string]string{"start_date": "2024-01-10", "end_date": "2024-01-12"})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", "Missing required field: reason")

	resp = f.do(t, http.MethodPost, "/api/leave", f.emp, map[string]string{
		"start_date": "10/01/2024", "end_date": "2024-01-12", "reason": "x",
	})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", usecase.MsgInvalidDateFormat)
}

func TestLeave_ManagerSobreNoPendienteNoCambiaEstado(t *testing.T) {
	f := newAPI(t)
	sub := submitLeave(t, f, f.emp, "2024-02-01", "2024-02-02", "x")
	resp := f.do(t, http.MethodPut, "/api/admin/leave-requests/"+itoa(sub.ID), f.admin, map[string]string{"status": "rejected"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPut, "/api/manager/leave-requests/"+itoa(sub.ID), f.mgr, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	stored, err := f.store.Leaves().GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveStatus("rejected"), stored.Status)
}

func TestLeave_AdminEstadoInvalido(t *testing.T) {
	f := newAPI(t)
	sub := submitLeave(t, f, f.emp, "2024-02-01", "2024-02-02", "x")
	resp := f.do(t, http.MethodPut, "/api/admin/leave-requests/"+itoa(sub.ID), f.admin, map[string]string{"status": "archived"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPut, "/api/admin/leave-requests/"+itoa(sub.ID), f.admin, map[string]string{"status": ""})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", "Invalid status value")

	resp = f.do(t, http.MethodPut, "/api/admin/leave-requests/"+itoa(sub.ID), f.admin, map[string]string{})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", "Status is required")

	stored, err := f.store.Leaves().GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveStatus("pending_manager"), stored.Status)
}

func TestLeave_IDInexistenteONoNumerico(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPut, "/api/manager/leave-requests/999", f.mgr, nil)
	assertError(t, resp, fiber.StatusNotFound, "NOT_FOUND", usecase.MsgLeaveNotFound)

	resp = f.do(t, http.MethodPut, "/api/manager/leave-requests/abc", f.mgr, nil)
	assertError(t, resp, fiber.StatusNotFound, "NOT_FOUND", usecase.MsgLeaveNotFound)
}

func TestLeave_AdminListaConNombreYSaldo(t *testing.T) {
	f := newAPI(t)
	submitLeave(t, f, f.emp, "2024-02-01", "2024-02-02", "x")
	resp := f.do(t, http.MethodGet, "/api/admin/leave-requests", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.AdminLeaveRequestListResponse
	decode(t, resp, &out)
	require.Len(t, out.LeaveRequests, 1)
	assert.Equal(t, "Persona E001", out.LeaveRequests[0].EmployeeName)
	assert.Equal(t, 20, out.LeaveRequests[0].LeaveBalance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAttendance_DuplicadoEnElDia(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/attendance", f.emp, map[string]string{"check_in_time": "08:00"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.MarkAttendanceResponse
	decode(t, resp, &out)
	assert.Equal(t, "Attendance marked", out.Message)
	assert.Equal(t, "2024-06-10", out.Date)
	assert.Equal(t, entity.AttendanceStatusPresent, out.Status)

	resp = f.do(t, http.MethodPost, "/api/attendance", f.emp, nil)
	assertError(t, resp, fiber.StatusConflict, "CONFLICT", usecase.MsgAttendanceExists)

	// otro usuario sí puede marcar el mismo día
	resp = f.do(t, http.MethodPost, "/api/attendance", f.other, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/admin/attendance/E001", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var hist dto.EmployeeAttendanceResponse
	decode(t, resp, &hist)
	require.Len(t, hist.Attendance, 1)
	require.NotNil(t, hist.Attendance[0].CheckInTime)
	assert.Equal(t, "08:00:00", *hist.Attendance[0].CheckInTime)
}

func TestAttendance_SalidaAntesDeEntrada(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/attendance", f.emp, map[string]string{
		"check_in_time": "17:00", "check_out_time": "08:00",
	})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", usecase.MsgCheckOutBeforeCheck)
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados, departamentos y perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployees_CrearValidaciones(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/admin/employees", f.admin, map[string]any{
		"emp_id": "E100", "email": "e100@example.com", "password": testPassword, "role": "employee", "department_id": 1,
	})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", "Missing required field: full_name")

	resp = f.do(t, http.MethodPost, "/api/admin/employees", f.admin, map[string]any{
		"emp_id": "E100", "email": "e100@example.com", "password": testPassword, "role": "intern",
		"department_id": 1, "full_name": "X",
	})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", "Invalid role")

	resp = f.do(t, http.MethodPost, "/api/admin/employees", f.admin, map[string]any{
		"emp_id": "E001", "email": "nuevo@example.com", "password": testPassword, "role": "employee",
		"department_id": 1, "full_name": "X",
	})
	assertError(t, resp, fiber.StatusConflict, "CONFLICT", usecase.MsgEmployeeExists)
}

func TestEmployees_CrearYActualizar(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/admin/employees", f.admin, map[string]any{
		"emp_id": "E100", "email": "e100@example.com", "password": testPassword, "role": "employee",
		"department_id": 1, "full_name": "Nueva Persona", "salary": "1500.50",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CreateEmployeeResponse
	decode(t, resp, &created)
	assert.Equal(t, "E100", created.EmpID)
	assert.Equal(t, "Employee added successfully", created.Message)

	resp = f.do(t, http.MethodPut, "/api/admin/employees/E100", f.admin, map[string]any{"phone": "555-0100"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPut, "/api/admin/employees/NOPE", f.admin, map[string]any{"phone": "1"})
	assertError(t, resp, fiber.StatusNotFound, "NOT_FOUND", usecase.MsgEmployeeNotFound)

	resp = f.do(t, http.MethodGet, "/api/admin/employees", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.EmployeeListResponse
	decode(t, resp, &list)
	var found bool
	for _, e := range list.Employees {
		if e.EmpID == "E100" {
			found = true
			require.NotNil(t, e.Profile)
			assert.Equal(t, "555-0100", e.Profile.Phone)
			assert.Equal(t, "e100@example.com", e.Profile.ContactEmail)
			assert.Equal(t, 20, e.LeaveBalance)
		}
	}
	assert.True(t, found)
}

func TestDepartments_CrearYDuplicado(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPost, "/api/admin/departments", f.admin, map[string]string{"name": "  "})
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", usecase.MsgDepartmentNameRequired)

	resp = f.do(t, http.MethodPost, "/api/admin/departments", f.admin, map[string]string{"name": "Finanzas"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CreateDepartmentResponse
	decode(t, resp, &created)
	assert.Equal(t, "Department added successfully", created.Message)
	assert.Equal(t, "Finanzas", created.Name)

	resp = f.do(t, http.MethodPost, "/api/admin/departments", f.admin, map[string]string{"name": "Engineering"})
	assertError(t, resp, fiber.StatusConflict, "CONFLICT", usecase.MsgDepartmentExists)

	resp = f.do(t, http.MethodGet, "/api/admin/departments", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.DepartmentListResponse
	decode(t, resp, &list)
	counts := map[string]int{}
	for _, d := range list.Departments {
		counts[d.Name] = d.EmployeeCount
	}
	assert.Equal(t, 4, counts["Engineering"])
	assert.Equal(t, 0, counts["Finanzas"])
}

func TestProfile_ContactoPropio(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPatch, "/api/profile/contact", f.emp, map[string]string{"contact_email": "no-es-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPatch, "/api/profile/contact", f.emp, map[string]string{"contact_email": "ana@personal.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/profile", f.emp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ProfileResponse
	decode(t, resp, &out)
	assert.Equal(t, "E001", out.Employee.EmpID)
	assert.Equal(t, "ana@personal.com", out.Employee.Profile.ContactEmail)
	require.NotNil(t, out.Employee.Department)
	assert.Equal(t, "Engineering", *out.Employee.Department)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestExportSelf_NoIncluyeOtrosUsuarios(t *testing.T) {
	f := newAPI(t)
	submitLeave(t, f, f.other, "2024-02-01", "2024-02-02", "secreto-de-otro")

	resp := f.do(t, http.MethodGet, "/api/export-self", f.emp, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "employee_data.csv")
	body := readBody(t, resp)
	assert.Contains(t, body, "E001")
	assert.NotContains(t, body, "E002")
	assert.NotContains(t, body, "secreto-de-otro")
}

func TestExportEmployee_PDFTodosNoSoportado(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodGet, "/api/admin/export-employee-pdf", f.admin, nil)
	assertError(t, resp, fiber.StatusBadRequest, "VALIDATION", export.MsgPDFAllUsers)

	resp = f.do(t, http.MethodGet, "/api/admin/export-employee-pdf?emp_id=E001", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF"))
}

func TestExportEmployee_CSVTodosYDesconocido(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodGet, "/api/admin/export-employee", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	for _, id := range []string{"A001", "M001", "E001", "E002"} {
		assert.Contains(t, body, id)
	}
	assert.Equal(t, 4, strings.Count(body, "\r\n\n\n"), "cada bloque termina en dos saltos")
	assert.True(t, strings.HasSuffix(body, "\r\n\n\n"))

	resp = f.do(t, http.MethodGet, "/api/admin/export-employee?emp_id=E001", f.admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "\n\n")

	resp = f.do(t, http.MethodGet, "/api/admin/export-employee-xlsx?emp_id=NOPE", f.admin, nil)
	assertError(t, resp, fiber.StatusNotFound, "NOT_FOUND", usecase.MsgEmployeeNotFound)

	resp = f.do(t, http.MethodGet, "/api/admin/export-employee", f.emp, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Admin access required")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambios de rol con sesiones abiertas
// ──────────────────────────────────────────────────────────────────────────────

func TestCambioDeRol_ManagerDegradadoPierdeReenvio(t *testing.T) {
	f := newAPI(t)
	sub := submitLeave(t, f, f.emp, "2024-02-01", "2024-02-02", "x")

	resp := f.do(t, http.MethodPut, "/api/admin/employees/M001", f.admin, map[string]string{"role": "employee"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPut, "/api/manager/leave-requests/"+itoa(sub.ID), f.mgr, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Manager access required")

	stored, err := f.store.Leaves().GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeavePendingManager, stored.Status)
}

func TestCambioDeRol_AdminDegradadoPierdeAdministracion(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPut, "/api/admin/employees/A001", f.admin, map[string]string{"role": "employee"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/admin/employees", f.admin, nil)
	assertError(t, resp, fiber.StatusForbidden, "FORBIDDEN", "Admin access required")
}

func TestCambioDeRol_AscensoAplicaSinNuevoLogin(t *testing.T) {
	f := newAPI(t)
	resp := f.do(t, http.MethodPut, "/api/admin/employees/E001", f.admin, map[string]string{"role": "manager"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sub := submitLeave(t, f, f.other, "2024-02-01", "2024-02-02", "x")
	resp = f.do(t, http.MethodPut, "/api/manager/leave-requests/"+itoa(sub.ID), f.emp, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
