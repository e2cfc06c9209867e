// seed_admin crea el primer departamento y la cuenta admin a partir de SEED_* para poder
// hacer login en una base vacía. Es idempotente: si el admin ya existe no hace nada.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/rrhh-api/internal/application/dto"
	"github.com/jhoicas/rrhh-api/internal/application/usecase"
	"github.com/jhoicas/rrhh-api/internal/domain/entity"
	"github.com/jhoicas/rrhh-api/internal/infrastructure/postgres"
	"github.com/jhoicas/rrhh-api/pkg/config"
	"github.com/jhoicas/rrhh-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed_admin")

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	users := postgres.NewUserRepository(pool)
	depts := postgres.NewDepartmentRepository(pool)

	exists, err := users.ExistsByEmpIDOrEmail(ctx, cfg.Seed.AdminEmpID, cfg.Seed.AdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if exists {
		log.Info().Str("emp_id", cfg.Seed.AdminEmpID).Msg("admin ya existe, nada que hacer")
		return
	}

	deptName := usecase.NormalizeName(cfg.Seed.DepartmentName)
	dept, err := depts.GetByName(ctx, deptName)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar departamento")
	}
	var deptID int64
	if dept != nil {
		deptID = dept.ID
	} else {
		created, err := usecase.NewDepartmentUseCase(depts, usecase.SystemClock).
			Create(ctx, dto.CreateDepartmentRequest{Name: deptName})
		if err != nil {
			log.Fatal().Err(err).Msg("crear departamento")
		}
		deptID = created.ID
	}

	leaves := postgres.NewLeaveRequestRepository(pool)
	balances := usecase.NewBalanceUseCase(users, leaves, cfg.Leave.AnnualDays, usecase.SystemClock)
	employees := usecase.NewEmployeeUseCase(
		users, postgres.NewProfileRepository(pool), depts, postgres.NewTxRunner(pool), balances, usecase.SystemClock,
	)
	role := string(entity.RoleAdmin)
	out, err := employees.Create(ctx, dto.CreateEmployeeRequest{
		EmpID:        &cfg.Seed.AdminEmpID,
		Email:        &cfg.Seed.AdminEmail,
		Password:     &cfg.Seed.AdminPassword,
		Role:         &role,
		DepartmentID: &deptID,
		FullName:     &cfg.Seed.AdminFullName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().
		Str("emp_id", out.EmpID).
		Str("department", deptName).
		Msg("admin creado")
}
