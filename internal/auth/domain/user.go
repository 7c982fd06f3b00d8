package domain

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt digest, never returned in JSON
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the public part of a user, embedded in tokens and login responses.
type Profile struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// Claims is the identity carried by a bearer token. It is never stored.
type Claims struct {
	Profile
	IssuedAt  time.Time
	ExpiresAt time.Time
}
