package domain

import "context"

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Nome      string `gorm:"type:varchar(100);not null;column:nome" json:"nome"`
	Email     string `gorm:"type:varchar(255);unique;not null;column:email" json:"email"`
	SenhaHash string `gorm:"type:varchar(255);not null;column:senha_hash" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}

type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UserResponse is the public view of a user, without the password hash.
type UserResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}

func (u User) Public() UserResponse {
	return UserResponse{ID: u.ID, Nome: u.Nome, Email: u.Email}
}

type AuthRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
