package repository

import (
	"context"
	"errors"
	"fmt"

	"maintenance-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepo реализует доступ к каталогу пользователей на базе PostgreSQL (только чтение).
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// List возвращает весь каталог пользователей, упорядоченный по username.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT id, username, first_name, last_name, email
FROM users
ORDER BY username
`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return collectUsers(rows)
}

// GetByID возвращает пользователя по идентификатору.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT id, username, first_name, last_name, email
FROM users
WHERE id = $1
`, id)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListByIDs возвращает пользователей с указанными идентификаторами.
// Отсутствующие идентификаторы просто не попадают в результат.
func (r *UserRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT id, username, first_name, last_name, email
FROM users
WHERE id = ANY($1)
ORDER BY username
`, ids)
	if err != nil {
		return nil, fmt.Errorf("query users by ids: %w", err)
	}
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]model.User, error) {
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}
