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

// EquipmentRepo реализует репозиторий оборудования на базе PostgreSQL.
type EquipmentRepo struct {
	db *Postgres
}

// NewEquipmentRepo создаёт новый экземпляр EquipmentRepo.
func NewEquipmentRepo(db *Postgres) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

func equipmentSelect() sq.SelectBuilder {
	return psql.Select(
		"e.id", "e.name", "e.serial_number", "e.department_or_owner", "e.location",
		"e.purchase_date", "e.warranty_end",
		"e.default_team_id", "t.name",
		"e.default_technician_id", "u.first_name", "u.last_name", "u.username",
		"e.is_usable", "e.created_at", "e.updated_at",
	).
		From("equipment e").
		LeftJoin("teams t ON t.id = e.default_team_id").
		LeftJoin("users u ON u.id = e.default_technician_id")
}

func scanEquipment(row pgx.Row) (model.Equipment, error) {
	var e model.Equipment
	var purchase time.Time
	var warranty *time.Time
	var techFirst, techLast, techUsername *string

	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.DepartmentOrOwner, &e.Location,
		&purchase, &warranty,
		&e.DefaultTeamID, &e.DefaultTeamName,
		&e.DefaultTechnicianID, &techFirst, &techLast, &techUsername,
		&e.IsUsable, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return model.Equipment{}, err
	}

	e.PurchaseDate = model.NewDate(purchase)
	if warranty != nil {
		d := model.NewDate(*warranty)
		e.WarrantyEnd = &d
	}
	e.DefaultTechnicianName = displayName(techFirst, techLast, techUsername)
	return e, nil
}

// List возвращает страницу оборудования (новое сверху) и общее количество.
func (r *EquipmentRepo) List(ctx context.Context, limit, offset uint64) ([]model.Equipment, int, error) {
	q := r.db.GetQueryExecutor(ctx)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM equipment`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count equipment: %w", err)
	}

	query, args, err := equipmentSelect().
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build equipment query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	items := make([]model.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}
	return items, total, nil
}

// Get возвращает оборудование по идентификатору. Если его нет, возвращает ErrEquipmentNotFound.
func (r *EquipmentRepo) Get(ctx context.Context, id int64) (model.Equipment, error) {
	query, args, err := equipmentSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return model.Equipment{}, fmt.Errorf("build equipment query: %w", err)
	}

	e, err := scanEquipment(r.db.GetQueryExecutor(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Equipment{}, ErrEquipmentNotFound
		}
		return model.Equipment{}, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

// Create сохраняет оборудование и возвращает его с вычисленными полями.
// При занятом серийном номере вернёт ErrSerialExists.
func (r *EquipmentRepo) Create(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	q := r.db.GetQueryExecutor(ctx)

	var id int64
	err := q.QueryRow(ctx, `
INSERT INTO equipment (name, serial_number, department_or_owner, location, purchase_date,
                       warranty_end, default_team_id, default_technician_id, is_usable)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`, e.Name, e.SerialNumber, e.DepartmentOrOwner, e.Location, e.PurchaseDate.Time,
		dateArg(e.WarrantyEnd), e.DefaultTeamID, e.DefaultTechnicianID, e.IsUsable).Scan(&id)
	if err != nil {
		return model.Equipment{}, mapEquipmentWriteErr("insert equipment", err)
	}

	return r.Get(ctx, id)
}

// Update перезаписывает изменяемые поля оборудования.
func (r *EquipmentRepo) Update(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
UPDATE equipment
SET name = $2,
    serial_number = $3,
    department_or_owner = $4,
    location = $5,
    purchase_date = $6,
    warranty_end = $7,
    default_team_id = $8,
    default_technician_id = $9,
    is_usable = $10,
    updated_at = now()
WHERE id = $1
`, e.ID, e.Name, e.SerialNumber, e.DepartmentOrOwner, e.Location, e.PurchaseDate.Time,
		dateArg(e.WarrantyEnd), e.DefaultTeamID, e.DefaultTechnicianID, e.IsUsable)
	if err != nil {
		return model.Equipment{}, mapEquipmentWriteErr("update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Equipment{}, ErrEquipmentNotFound
	}

	return r.Get(ctx, e.ID)
}

// MarkUnusable снимает признак пригодности оборудования. Обратной операции в репозитории нет:
// вернуть пригодность можно только ручным обновлением оборудования.
func (r *EquipmentRepo) MarkUnusable(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `
UPDATE equipment
SET is_usable = FALSE,
    updated_at = now()
WHERE id = $1
`, id)
	if err != nil {
		return fmt.Errorf("mark equipment unusable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

// Delete удаляет оборудование. Заявки каскадно не удаляются: если они есть,
// возвращается ErrEquipmentInUse.
func (r *EquipmentRepo) Delete(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return ErrEquipmentInUse
		}
		return fmt.Errorf("delete equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

func mapEquipmentWriteErr(op string, err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		return ErrSerialExists
	case pgForeignKeyViolation:
		return ErrInvalidReference
	}
	return fmt.Errorf("%s: %w", op, err)
}

func dateArg(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
