// Package memory implementa los puertos de repositorio en memoria. Lo usan los tests de
// casos de uso y de la capa HTTP en lugar de PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/rrhh-api/internal/domain"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/domain/repository"
)

// Store estado compartido por todos los repos en memoria.
type Store struct {
	mu          sync.Mutex
	seq         int64
	users       map[int64]entity.User
	profiles    map[int64]entity.EmployeeProfile
	departments map[int64]entity.Department
	leaves      map[int64]entity.LeaveRequest
	attendance  map[int64]entity.Attendance
	revoked     map[string]time.Time

	// FailWith si no es nil lo devuelven todas las operaciones (simula caída del store).
	FailWith error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:       map[int64]entity.User{},
		profiles:    map[int64]entity.EmployeeProfile{},
		departments: map[int64]entity.Department{},
		leaves:      map[int64]entity.LeaveRequest{},
		attendance:  map[int64]entity.Attendance{},
		revoked:     map[string]time.Time{},
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// Users repo de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s} }

// Profiles repo de perfiles.
func (s *Store) Profiles() *ProfileRepo { return &ProfileRepo{s} }

// Departments repo de departamentos.
func (s *Store) Departments() *DepartmentRepo { return &DepartmentRepo{s} }

// Leaves repo de solicitudes.
func (s *Store) Leaves() *LeaveRepo { return &LeaveRepo{s} }

// Attendance repo de asistencia.
func (s *Store) Attendance() *AttendanceRepo { return &AttendanceRepo{s} }

// Revocations store de JTI revocados.
func (s *Store) Revocations() *RevocationStore { return &RevocationStore{s} }

// Tx runner transaccional (restaura usuarios y perfiles si fn falla).
func (s *Store) Tx() *TxRunner { return &TxRunner{s} }

var (
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.ProfileRepository      = (*ProfileRepo)(nil)
	_ repository.DepartmentRepository   = (*DepartmentRepo)(nil)
	_ repository.LeaveRequestRepository = (*LeaveRepo)(nil)
	_ repository.AttendanceRepository   = (*AttendanceRepo)(nil)
	_ repository.TokenRevocationStore   = (*RevocationStore)(nil)
	_ repository.TxRunner               = (*TxRunner)(nil)
)

// ── Users ───────────────────────────────────────────────────────────────────

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	for _, existing := range r.s.users {
		if existing.EmpID == u.EmpID || existing.Email == u.Email {
			return domain.ErrConflict
		}
	}
	u.ID = r.s.nextID()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmpID(_ context.Context, empID string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.EmpID == empID })
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepo) ExistsByEmpIDOrEmail(_ context.Context, empID, email string) (bool, error) {
	u, err := r.find(func(u entity.User) bool { return u.EmpID == empID || u.Email == email })
	return u != nil, err
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.users {
		if id != u.ID && (existing.EmpID == u.EmpID || existing.Email == u.Email) {
			return domain.ErrConflict
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, u := range r.s.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ── Profiles ────────────────────────────────────────────────────────────────

type ProfileRepo struct{ s *Store }

func (r *ProfileRepo) Create(_ context.Context, p *entity.EmployeeProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	if _, ok := r.s.profiles[p.UserID]; ok {
		return domain.ErrConflict
	}
	r.s.profiles[p.UserID] = *p
	return nil
}

func (r *ProfileRepo) GetByUserID(_ context.Context, userID int64) (*entity.EmployeeProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProfileRepo) List(_ context.Context) ([]*entity.EmployeeProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]*entity.EmployeeProfile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *ProfileRepo) Update(_ context.Context, p *entity.EmployeeProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	if _, ok := r.s.profiles[p.UserID]; !ok {
		return domain.ErrNotFound
	}
	r.s.profiles[p.UserID] = *p
	return nil
}

// ── Departments ─────────────────────────────────────────────────────────────

type DepartmentRepo struct{ s *Store }

func (r *DepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	for _, existing := range r.s.departments {
		if existing.Name == d.Name {
			return domain.ErrConflict
		}
	}
	d.ID = r.s.nextID()
	r.s.departments[d.ID] = *d
	return nil
}

func (r *DepartmentRepo) GetByID(_ context.Context, id int64) (*entity.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	d, ok := r.s.departments[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *DepartmentRepo) GetByName(_ context.Context, name string) (*entity.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, d := range r.s.departments {
		if d.Name == name {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (r *DepartmentRepo) ListWithCounts(_ context.Context) ([]*entity.DepartmentWithCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	counts := map[int64]int{}
	for _, u := range r.s.users {
		if u.DepartmentID != nil {
			counts[*u.DepartmentID]++
		}
	}
	out := make([]*entity.DepartmentWithCount, 0, len(r.s.departments))
	for _, d := range r.s.departments {
		out = append(out, &entity.DepartmentWithCount{Department: d, EmployeeCount: counts[d.ID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Leave requests ──────────────────────────────────────────────────────────

type LeaveRepo struct{ s *Store }

func (r *LeaveRepo) Create(_ context.Context, req *entity.LeaveRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	req.ID = r.s.nextID()
	r.s.leaves[req.ID] = *req
	return nil
}

func (r *LeaveRepo) GetByID(_ context.Context, id int64) (*entity.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	req, ok := r.s.leaves[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *LeaveRepo) ListByEmployee(_ context.Context, employeeID int64) ([]*entity.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	var out []*entity.LeaveRequest
	for _, req := range r.s.leaves {
		if req.EmployeeID == employeeID {
			req := req
			out = append(out, &req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *LeaveRepo) ListAll(_ context.Context) ([]*entity.LeaveRequestWithEmployee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	out := make([]*entity.LeaveRequestWithEmployee, 0, len(r.s.leaves))
	for _, req := range r.s.leaves {
		out = append(out, &entity.LeaveRequestWithEmployee{
			LeaveRequest: req,
			EmployeeName: r.s.profiles[req.EmployeeID].FullName,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LeaveRepo) UpdateStatus(_ context.Context, id int64, status entity.LeaveStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	req, ok := r.s.leaves[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	r.s.leaves[id] = req
	return nil
}

// ── Attendance ──────────────────────────────────────────────────────────────

type AttendanceRepo struct{ s *Store }

func (r *AttendanceRepo) Create(_ context.Context, a *entity.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	for _, existing := range r.s.attendance {
		if existing.UserID == a.UserID && existing.Date.Equal(a.Date) {
			return domain.ErrConflict
		}
	}
	a.ID = r.s.nextID()
	r.s.attendance[a.ID] = *a
	return nil
}

func (r *AttendanceRepo) GetByUserAndDate(_ context.Context, userID int64, date time.Time) (*entity.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	for _, a := range r.s.attendance {
		if a.UserID == userID && a.Date.Equal(date) {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	var out []*entity.Attendance
	for _, a := range r.s.attendance {
		if a.UserID == userID {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ── Revocations ─────────────────────────────────────────────────────────────

type RevocationStore struct{ s *Store }

func (r *RevocationStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	r.s.revoked[jti] = expiresAt
	return nil
}

func (r *RevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWith != nil {
		return false, r.s.FailWith
	}
	exp, ok := r.s.revoked[jti]
	return ok && time.Now().Before(exp), nil
}

// ── Tx ──────────────────────────────────────────────────────────────────────

type TxRunner struct{ s *Store }

func (t *TxRunner) RunEmployee(ctx context.Context, fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error {
	t.s.mu.Lock()
	users := make(map[int64]entity.User, len(t.s.users))
	for k, v := range t.s.users {
		users[k] = v
	}
	profiles := make(map[int64]entity.EmployeeProfile, len(t.s.profiles))
	for k, v := range t.s.profiles {
		profiles[k] = v
	}
	t.s.mu.Unlock()

	if err := fn(t.s.Users(), t.s.Profiles()); err != nil {
		t.s.mu.Lock()
		t.s.users, t.s.profiles = users, profiles
		t.s.mu.Unlock()
		return err
	}
	return nil
}
