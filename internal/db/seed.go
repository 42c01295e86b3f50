package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

const adminName = "Kezya Rodrigues"

// Dataset é a carga inicial de um banco vazio.
type Dataset struct {
	Settings     models.GlobalSettings
	Clients      []models.Client
	Appointments []models.Appointment
	Tasks        []models.KanbanTask
}

func strPtr(s string) *string { return &s }

// SeedData monta os dados de demonstração. O agendamento de exemplo
// fica para o dia seguinte a today.
func SeedData(today time.Time) Dataset {
	tomorrow := today.AddDate(0, 0, 1).Format("2006-01-02")

	return Dataset{
		Settings: models.GlobalSettings{ID: 1, DefaultPrice: 180, DefaultDuration: 40},
		Clients: []models.Client{
			{
				ID:              "1",
				Name:            "Arthur Lima",
				Address:         "Rua das Palmeiras, 45",
				Phone:           "2197777777",
				Email:           "arthur@email.com",
				Status:          "active",
				TreatmentStage:  "In Treatment",
				LastSessionDate: strPtr("2023-11-05"),
			},
			{
				ID:              "2",
				Name:            "Beatriz Costa",
				Address:         "Av. das Américas, 500",
				Phone:           "2196666666",
				Email:           "beatriz@email.com",
				Status:          "active",
				TreatmentStage:  "Evaluation",
				LastSessionDate: strPtr("2023-11-10"),
			},
		},
		Appointments: []models.Appointment{
			{
				ID:       "a1",
				ClientID: "1",
				Date:     tomorrow,
				Time:     "14:00",
				Type:     "Clinical",
				Status:   "scheduled",
				Source:   "admin",
				MeetLink: "https://meet.google.com/kezya-arthur-sessao",
				Price:    180,
				Duration: 40,
			},
		},
		Tasks: []models.KanbanTask{
			{ID: "t1", Title: "Avaliação de Linguagem - Arthur", Status: "doing"},
			{ID: "t2", Title: "Relatório de Triagem - Beatriz", Status: "todo"},
		},
	}
}

// Seed grava o dataset apenas quando ainda não há clientes. O usuário
// administrador é garantido sempre.
func Seed(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string, today time.Time) (bool, error) {
	if err := EnsureAdmin(ctx, db, adminEmail, adminPassword); err != nil {
		return false, err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Client{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("db: seed count: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	data := SeedData(today)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&data.Settings).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Clients).Error; err != nil {
			return err
		}
		if err := tx.Omit("Client").Create(&data.Appointments).Error; err != nil {
			return err
		}
		return tx.Create(&data.Tasks).Error
	})
	if err != nil {
		return false, fmt.Errorf("db: seed: %w", err)
	}

	return true, nil
}

// EnsureAdmin cria o login administrativo quando ainda não existe.
func EnsureAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("db: admin email and password are required")
	}

	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("db: admin lookup: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         adminName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("db: admin create: %w", err)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("db: hash password: %w", err)
	}
	return string(hashed), nil
}
