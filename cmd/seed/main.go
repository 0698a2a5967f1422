package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/logger"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

const demoPassword = "password123"

func main() {
	logger.Init()
	log.Info().Msg("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Employee{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}

	created := 0
	for _, employee := range demoEmployees(admin.ID) {
		if _, err := employeeRepo.FindByName(ctx, admin.ID, employee.FullName); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatal().Err(err).Str("name", employee.FullName).Msg("check employee")
		}
		if err := employeeRepo.Create(ctx, &employee); err != nil {
			log.Fatal().Err(err).Str("name", employee.FullName).Msg("create employee")
		}
		created++
	}

	log.Info().
		Str("admin", admin.Email).
		Int("employees_created", created).
		Msg("seed complete")
}

func seedAdmin(ctx context.Context, userRepo repository.UserRepository) (*model.User, error) {
	existing, err := userRepo.FindByEmail(ctx, "demo@staffdesk.local")
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         "Demo",
		Surname:      "Admin",
		Email:        "demo@staffdesk.local",
		PasswordHash: string(hashed),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func demoEmployees(adminID uint) []model.Employee {
	return []model.Employee{
		{
			AdminID:    adminID,
			FullName:   "Jane Doe",
			Department: "Engineering",
			Position:   "Software Engineer",
			Email:      "jane.doe@example.com",
			Phone:      "555-0101",
			Salary:     decimal.RequireFromString("82000.00"),
		},
		{
			AdminID:    adminID,
			FullName:   "John Birch",
			Department: "Engineering",
			Position:   "SRE",
			Email:      "john.birch@example.com",
			Phone:      "555-0102",
			Salary:     decimal.RequireFromString("78500.50"),
		},
		{
			AdminID:    adminID,
			FullName:   "Maria Keller",
			Department: "Finance",
			Position:   "Accountant",
			Email:      "maria.keller@example.com",
			Phone:      "555-0103",
			Salary:     decimal.RequireFromString("64000.00"),
		},
	}
}
