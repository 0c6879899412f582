package user

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
		RETURNING id
	`)

	err := r.db.QueryRow(query, user.Username, user.PasswordHash).Scan(&user.ID)
	return repository.Translate("create user", err)
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	query := r.db.Rebind(`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`)
	err := r.db.Get(&user, query, username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, repository.Translate("get user", err)
	}
	return &user, nil
}

func (r *userRepository) Exists() (bool, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM users`); err != nil {
		return false, repository.Translate("count users", err)
	}
	return count > 0, nil
}

func (r *userRepository) UpdatePassword(username, passwordHash string) error {
	query := r.db.Rebind(`UPDATE users SET password_hash = ? WHERE username = ?`)
	res, err := r.db.Exec(query, passwordHash, username)
	if err != nil {
		return repository.Translate("update password", err)
	}
	return repository.CheckAffected("update password", res)
}
