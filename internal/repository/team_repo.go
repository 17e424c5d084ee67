package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maintenance-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// TeamRepo реализует репозиторий ремонтных команд на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// Create создаёт команду и привязывает участников. Вызывать внутри транзакции:
// при конфликте имени вернёт ErrTeamExists, при неизвестном участнике ErrUserNotFound.
func (r *TeamRepo) Create(ctx context.Context, name string, memberIDs []int64) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var id int64
	err := q.QueryRow(ctx, `INSERT INTO teams (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return model.Team{}, ErrTeamExists
		}
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}

	if err := r.replaceMembers(ctx, q, id, memberIDs); err != nil {
		return model.Team{}, err
	}

	return r.Get(ctx, id)
}

// Update меняет имя и/или состав команды. nil-поля не изменяются.
func (r *TeamRepo) Update(ctx context.Context, id int64, name *string, memberIDs *[]int64) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
UPDATE teams
SET name = COALESCE($2, name),
    updated_at = now()
WHERE id = $1
`, id, name)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return model.Team{}, ErrTeamExists
		}
		return model.Team{}, fmt.Errorf("update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Team{}, ErrTeamNotFound
	}

	if memberIDs != nil {
		if err := r.replaceMembers(ctx, q, id, *memberIDs); err != nil {
			return model.Team{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *TeamRepo) replaceMembers(ctx context.Context, q DBTX, teamID int64, memberIDs []int64) error {
	if _, err := q.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("clear members: %w", err)
	}
	if len(memberIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, uid := range memberIDs {
		batch.Queue(`
INSERT INTO team_members (team_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, teamID, uid)
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("insert members: %w", err)
	}
	return nil
}

// Get возвращает команду вместе с участниками. Если команды нет, возвращает ErrTeamNotFound.
func (r *TeamRepo) Get(ctx context.Context, id int64) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`, id)

	var t model.Team
	if err := row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}

	members, err := r.membersOf(ctx, q, []int64{id})
	if err != nil {
		return model.Team{}, err
	}
	setMembers(&t, members[id])
	return t, nil
}

// List возвращает все команды по имени вместе с участниками.
func (r *TeamRepo) List(ctx context.Context) ([]model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}

	teams := make([]model.Team, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var t model.Team
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&t.ID, &t.Name, &createdAt, &updatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.CreatedAt, t.UpdatedAt = createdAt, updatedAt
		teams = append(teams, t)
		ids = append(ids, t.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	members, err := r.membersOf(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		setMembers(&teams[i], members[teams[i].ID])
	}
	return teams, nil
}

// ReleaseTechnicians снимает техников, не входящих в keep, с заявок команды и с оборудования,
// закреплённого за ней по умолчанию. Возвращает число изменённых заявок.
func (r *TeamRepo) ReleaseTechnicians(ctx context.Context, teamID int64, keep []int64) (int64, error) {
	q := r.db.GetQueryExecutor(ctx)
	if keep == nil {
		keep = []int64{}
	}

	tag, err := q.Exec(ctx, `
UPDATE maintenance_requests
SET technician_id = NULL,
    updated_at = now()
WHERE team_id = $1
  AND technician_id IS NOT NULL
  AND technician_id <> ALL($2)
`, teamID, keep)
	if err != nil {
		return 0, fmt.Errorf("release request technicians: %w", err)
	}

	if _, err := q.Exec(ctx, `
UPDATE equipment
SET default_technician_id = NULL,
    updated_at = now()
WHERE default_team_id = $1
  AND default_technician_id IS NOT NULL
  AND default_technician_id <> ALL($2)
`, teamID, keep); err != nil {
		return 0, fmt.Errorf("release default technicians: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete удаляет команду. Ссылки оборудования и заявок на команду обнуляются внешними ключами;
// техников перед этим снимает ReleaseTechnicians.
func (r *TeamRepo) Delete(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepo) membersOf(ctx context.Context, q DBTX, teamIDs []int64) (map[int64][]model.User, error) {
	result := make(map[int64][]model.User, len(teamIDs))
	if len(teamIDs) == 0 {
		return result, nil
	}

	rows, err := q.Query(ctx, `
SELECT tm.team_id, u.id, u.username, u.first_name, u.last_name, u.email
FROM team_members tm
JOIN users u ON u.id = tm.user_id
WHERE tm.team_id = ANY($1)
ORDER BY u.username
`, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teamID int64
		var u model.User
		if err := rows.Scan(&teamID, &u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		result[teamID] = append(result[teamID], u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func setMembers(t *model.Team, members []model.User) {
	t.Members = make([]model.User, 0, len(members))
	t.MemberIDs = make([]int64, 0, len(members))
	for _, m := range members {
		t.Members = append(t.Members, m)
		t.MemberIDs = append(t.MemberIDs, m.ID)
	}
}
