package repository

import (
	"context"
	"fmt"

	"find-fuel/internal/data/entity"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsuario(ctx context.Context, usuario string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (id, usuario, nome, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Usuario,
		user.Nome,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("usuario", user.Usuario),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Usuario, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, usuario, nome, email, password, role, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Usuario,
		&user.Nome,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByUsuario(ctx context.Context, usuario string) (*entity.User, error) {
	query := `
		SELECT id, usuario, nome, email, password, role, created_at, updated_at
		FROM usuarios
		WHERE usuario = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, usuario).Scan(
		&user.ID,
		&user.Usuario,
		&user.Nome,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by usuario",
			zap.Error(err),
			zap.String("usuario", usuario),
		)
		return nil, fmt.Errorf("find user by usuario %s: %w", usuario, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, usuario, nome, email, password, role, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Usuario,
		&user.Nome,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// FindAll retrieves paginated list of users
func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, usuario, nome, email, password, role, created_at, updated_at
		FROM usuarios
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := ur.db.Query(ctx, query, limit, offset)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Usuario,
			&user.Nome,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM usuarios`

	var count int64
	err := ur.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

// UpdateProfile re-checks handle and email uniqueness against all other
// users and applies the update inside one transaction. Either every field
// is written or none is; a conflict or store failure rolls back fully.
func (ur *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin update transaction",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("begin update user %s: %w", user.ID.String(), err)
	}
	defer tx.Rollback(ctx)

	var taken bool

	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE usuario = $1 AND id <> $2)`,
		user.Usuario, user.ID,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check usuario uniqueness: %w", err)
	}
	if taken {
		return apperrors.NewConflict("usuario")
	}

	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1 AND id <> $2)`,
		user.Email, user.ID,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return apperrors.NewConflict("email")
	}

	result, err := tx.Exec(ctx, `
		UPDATE usuarios
		SET usuario = $2, nome = $3, email = $4, password = $5, updated_at = $6
		WHERE id = $1
	`,
		user.ID,
		user.Usuario,
		user.Nome,
		user.Email,
		user.PasswordHash,
		user.UpdatedAt,
	)
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("user " + user.ID.String())
	}

	return tx.Commit(ctx)
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM usuarios WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFound("user " + id.String())
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}
