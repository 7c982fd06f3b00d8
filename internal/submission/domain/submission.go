package domain

import (
	"time"

	authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"
)

// TestDrive is a scheduled test drive request
type TestDrive struct {
	ID            uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        uint             `json:"userId" gorm:"index;not null"`
	User          *authdomain.User `json:"-"`
	CarModel      string           `json:"carModel" gorm:"not null"`
	Name          string           `json:"name" gorm:"not null"`
	Email         string           `json:"email" gorm:"not null"`
	Phone         string           `json:"phone" gorm:"not null"`
	PreferredDate string           `json:"preferredDate" gorm:"not null"`
	PreferredTime string           `json:"preferredTime" gorm:"not null"`
	CreatedAt     time.Time        `json:"createdAt" gorm:"index"`
}

// Message is a contact form message. UserID is nullable in the schema.
type Message struct {
	ID        uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    *uint            `json:"userId" gorm:"index"`
	User      *authdomain.User `json:"-"`
	Name      string           `json:"name" gorm:"not null"`
	Email     string           `json:"email" gorm:"not null"`
	Phone     string           `json:"phone" gorm:"not null"`
	Interest  string           `json:"interest" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	CreatedAt time.Time        `json:"createdAt"`
}

type FinancingRequest struct {
	ID        uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    *uint            `json:"userId" gorm:"index"`
	User      *authdomain.User `json:"-"`
	Name      string           `json:"name" gorm:"not null"`
	Email     string           `json:"email" gorm:"not null"`
	Phone     string           `json:"phone" gorm:"not null"`
	Amount    float64          `json:"amount" gorm:"not null"`
	Term      int              `json:"term" gorm:"not null"`
	Message   *string          `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TestDriveSummary is the row shape returned by GET /my-test-drives
type TestDriveSummary struct {
	ID            uint      `json:"id"`
	CarModel      string    `json:"carModel"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	CreatedAt     time.Time `json:"createdAt"`
}
