package entity

type User struct {
	Base
	Email      string `db:"email"`
	APIKey     string `db:"api_key"` // empty string = no active key
	IsVerified bool   `db:"is_verified"`
}
