package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"maintenance-service/internal/model"
)

// RequestRepo реализует репозиторий заявок на обслуживание на базе PostgreSQL.
type RequestRepo struct {
	db *Postgres
}

// NewRequestRepo создаёт новый экземпляр RequestRepo.
func NewRequestRepo(db *Postgres) *RequestRepo {
	return &RequestRepo{db: db}
}

func requestSelect() sq.SelectBuilder {
	return psql.Select(
		"r.id", "r.subject", "r.equipment_id", "e.name", "r.request_type", "r.status",
		"r.scheduled_date", "r.duration_seconds",
		"r.team_id", "t.name",
		"r.technician_id", "tu.first_name", "tu.last_name", "tu.username",
		"r.created_by_id", "cu.first_name", "cu.last_name", "cu.username",
		"r.created_at", "r.updated_at",
	).
		From("maintenance_requests r").
		Join("equipment e ON e.id = r.equipment_id").
		LeftJoin("teams t ON t.id = r.team_id").
		LeftJoin("users tu ON tu.id = r.technician_id").
		LeftJoin("users cu ON cu.id = r.created_by_id")
}

// requestFilterWhere переводит фильтр в условие WHERE; пустые фильтры опускаются,
// заданные объединяются через AND.
func requestFilterWhere(f model.RequestFilter) sq.Eq {
	where := sq.Eq{}
	if f.Status != nil {
		where["r.status"] = string(*f.Status)
	}
	if f.RequestType != nil {
		where["r.request_type"] = string(*f.RequestType)
	}
	if f.EquipmentID != nil {
		where["r.equipment_id"] = *f.EquipmentID
	}
	return where
}

func buildListRequests(f model.RequestFilter) (countSQL string, countArgs []any, listSQL string, listArgs []any, err error) {
	where := requestFilterWhere(f)

	count := psql.Select("COUNT(*)").From("maintenance_requests r")
	list := requestSelect().OrderBy("r.created_at DESC", "r.id DESC")
	if len(where) > 0 {
		count = count.Where(where)
		list = list.Where(where)
	}
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		list = list.Limit(uint64(f.PageSize)).Offset(uint64((page - 1) * f.PageSize))
	}

	if countSQL, countArgs, err = count.ToSql(); err != nil {
		return "", nil, "", nil, fmt.Errorf("build count query: %w", err)
	}
	if listSQL, listArgs, err = list.ToSql(); err != nil {
		return "", nil, "", nil, fmt.Errorf("build list query: %w", err)
	}
	return countSQL, countArgs, listSQL, listArgs, nil
}

func scanRequest(row pgx.Row) (model.MaintenanceRequest, error) {
	var mr model.MaintenanceRequest
	var requestType, status string
	var durationSeconds int64
	var techFirst, techLast, techUsername *string
	var authorFirst, authorLast, authorUsername *string

	err := row.Scan(
		&mr.ID, &mr.Subject, &mr.EquipmentID, &mr.EquipmentName, &requestType, &status,
		&mr.ScheduledDate, &durationSeconds,
		&mr.TeamID, &mr.TeamName,
		&mr.TechnicianID, &techFirst, &techLast, &techUsername,
		&mr.CreatedByID, &authorFirst, &authorLast, &authorUsername,
		&mr.CreatedAt, &mr.UpdatedAt,
	)
	if err != nil {
		return model.MaintenanceRequest{}, err
	}

	mr.RequestType = model.RequestType(requestType)
	mr.Status = model.RequestStatus(status)
	mr.Duration = model.DurationFromSeconds(durationSeconds)
	mr.TechnicianName = displayName(techFirst, techLast, techUsername)
	mr.CreatedByName = displayName(authorFirst, authorLast, authorUsername)
	return mr, nil
}

func (r *RequestRepo) query(ctx context.Context, query string, args []any) ([]model.MaintenanceRequest, error) {
	rows, err := r.db.GetQueryExecutor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	res := make([]model.MaintenanceRequest, 0)
	for rows.Next() {
		mr, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, mr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// List возвращает страницу заявок, удовлетворяющих всем заданным фильтрам, и общее количество.
func (r *RequestRepo) List(ctx context.Context, f model.RequestFilter) ([]model.MaintenanceRequest, int, error) {
	countSQL, countArgs, listSQL, listArgs, err := buildListRequests(f)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	items, err := r.query(ctx, listSQL, listArgs)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByEquipment возвращает все заявки по оборудованию.
func (r *RequestRepo) ListByEquipment(ctx context.Context, equipmentID int64) ([]model.MaintenanceRequest, error) {
	query, args, err := requestSelect().
		Where(sq.Eq{"r.equipment_id": equipmentID}).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build requests query: %w", err)
	}
	return r.query(ctx, query, args)
}

// ListPreventive возвращает плановые заявки для календаря, опционально в окне [from, to).
func (r *RequestRepo) ListPreventive(ctx context.Context, from, to *time.Time) ([]model.MaintenanceRequest, error) {
	query, args, err := buildListPreventive(from, to)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, query, args)
}

func buildListPreventive(from, to *time.Time) (string, []any, error) {
	b := requestSelect().
		Where(sq.Eq{"r.request_type": string(model.TypePreventive)}).
		OrderBy("r.scheduled_date", "r.id")
	if from != nil {
		b = b.Where(sq.GtOrEq{"r.scheduled_date": *from})
	}
	if to != nil {
		b = b.Where(sq.Lt{"r.scheduled_date": *to})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build calendar query: %w", err)
	}
	return query, args, nil
}

// Get возвращает заявку по идентификатору. Если её нет, возвращает ErrRequestNotFound.
func (r *RequestRepo) Get(ctx context.Context, id int64) (model.MaintenanceRequest, error) {
	query, args, err := requestSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return model.MaintenanceRequest{}, fmt.Errorf("build request query: %w", err)
	}

	mr, err := scanRequest(r.db.GetQueryExecutor(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MaintenanceRequest{}, ErrRequestNotFound
		}
		return model.MaintenanceRequest{}, fmt.Errorf("get request: %w", err)
	}
	return mr, nil
}

// LockStatus блокирует строку заявки до конца транзакции и возвращает её статус
// и оборудование. Вызывать только внутри транзакции.
func (r *RequestRepo) LockStatus(ctx context.Context, id int64) (model.RequestStatus, int64, error) {
	var status string
	var equipmentID int64
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
SELECT status, equipment_id
FROM maintenance_requests
WHERE id = $1
FOR UPDATE
`, id).Scan(&status, &equipmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, ErrRequestNotFound
		}
		return "", 0, fmt.Errorf("lock request: %w", err)
	}
	return model.RequestStatus(status), equipmentID, nil
}

// Create сохраняет заявку и возвращает её с вычисленными полями.
func (r *RequestRepo) Create(ctx context.Context, mr model.MaintenanceRequest) (model.MaintenanceRequest, error) {
	var id int64
	err := r.db.GetQueryExecutor(ctx).QueryRow(ctx, `
INSERT INTO maintenance_requests (subject, equipment_id, request_type, status, scheduled_date,
                                  duration_seconds, team_id, technician_id, created_by_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`, mr.Subject, mr.EquipmentID, string(mr.RequestType), string(mr.Status), mr.ScheduledDate,
		mr.Duration.Seconds(), mr.TeamID, mr.TechnicianID, mr.CreatedByID).Scan(&id)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return model.MaintenanceRequest{}, ErrInvalidReference
		}
		return model.MaintenanceRequest{}, fmt.Errorf("insert request: %w", err)
	}
	return r.Get(ctx, id)
}

// Update перезаписывает редактируемые поля заявки. Статус здесь не меняется:
// для этого есть UpdateStatus.
func (r *RequestRepo) Update(ctx context.Context, mr model.MaintenanceRequest) (model.MaintenanceRequest, error) {
	tag, err := r.db.GetQueryExecutor(ctx).Exec(ctx, `
UPDATE maintenance_requests
SET subject = $2,
    equipment_id = $3,
    request_type = $4,
    scheduled_date = $5,
    duration_seconds = $6,
    team_id = $7,
    technician_id = $8,
    updated_at = now()
WHERE id = $1
`, mr.ID, mr.Subject, mr.EquipmentID, string(mr.RequestType), mr.ScheduledDate,
		mr.Duration.Seconds(), mr.TeamID, mr.TechnicianID)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return model.MaintenanceRequest{}, ErrInvalidReference
		}
		return model.MaintenanceRequest{}, fmt.Errorf("update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.MaintenanceRequest{}, ErrRequestNotFound
	}
	return r.Get(ctx, mr.ID)
}

// UpdateStatus записывает новый статус заявки.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error {
	tag, err := r.db.GetQueryExecutor(ctx).Exec(ctx, `
UPDATE maintenance_requests
SET status = $2,
    updated_at = now()
WHERE id = $1
`, id, string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// SetTechnician назначает (или снимает при nil) техника заявки.
func (r *RequestRepo) SetTechnician(ctx context.Context, id int64, technicianID *int64) error {
	tag, err := r.db.GetQueryExecutor(ctx).Exec(ctx, `
UPDATE maintenance_requests
SET technician_id = $2,
    updated_at = now()
WHERE id = $1
`, id, technicianID)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("set technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Delete удаляет заявку.
func (r *RequestRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.GetQueryExecutor(ctx).Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}
