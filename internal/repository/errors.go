package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists возвращается при попытке создать команду с занятым именем.
	ErrTeamExists = errors.New("team already exists")

	// ErrEquipmentNotFound возвращается, если оборудование не найдено.
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrSerialExists возвращается при конфликте серийного номера оборудования.
	ErrSerialExists = errors.New("serial number already exists")

	// ErrEquipmentInUse возвращается при удалении оборудования, на которое ссылаются заявки.
	ErrEquipmentInUse = errors.New("equipment is referenced by maintenance requests")

	// ErrRequestNotFound возвращается, если заявка не найдена.
	ErrRequestNotFound = errors.New("maintenance request not found")

	// ErrInvalidReference возвращается при нарушении внешнего ключа на запись.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
