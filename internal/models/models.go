package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// Calculation is one completed arithmetic operation owned by a user.
// Failed operations (division by zero, unknown operation) are never stored.
type Calculation struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	Operation string    `json:"operation" gorm:"size:16;not null"`
	Operand1  float64   `json:"operand1" gorm:"not null"`
	Operand2  float64   `json:"operand2" gorm:"not null"`
	Result    float64   `json:"result" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Expression is one evaluated free-form arithmetic expression.
type Expression struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"user_id" gorm:"index;not null"`
	Expression string    `json:"expression" gorm:"not null"`
	Result     float64   `json:"result" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
