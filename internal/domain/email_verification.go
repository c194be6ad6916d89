package domain

import "time"

type EmailVerification struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Email       string    `json:"email" db:"email"`
	UserToken   string    `json:"-" db:"user_token"`
	RandomToken string    `json:"-" db:"random_token"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
