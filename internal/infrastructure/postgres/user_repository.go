package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Username duplicado → domain.ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, organization_id, username, password_hash, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.OrganizationID, user.Username, user.PasswordHash,
		user.Permissions, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, organization_id, username, password_hash, permissions, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.OrganizationID, &u.Username, &u.PasswordHash,
		&u.Permissions, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindByUsername obtiene un usuario por username. Devuelve nil si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, organization_id, username, password_hash, permissions, created_at, updated_at
		FROM users WHERE username = $1`
	var u entity.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.OrganizationID, &u.Username, &u.PasswordHash,
		&u.Permissions, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}
