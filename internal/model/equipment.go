package model

import "time"

// Equipment описывает единицу оборудования, её команду и техника по умолчанию.
type Equipment struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	SerialNumber          string    `json:"serial_number"`
	DepartmentOrOwner     string    `json:"department_or_owner"`
	Location              string    `json:"location"`
	PurchaseDate          Date      `json:"purchase_date"`
	WarrantyEnd           *Date     `json:"warranty_end"`
	DefaultTeamID         *int64    `json:"default_team"`
	DefaultTeamName       *string   `json:"default_team_name"`
	DefaultTechnicianID   *int64    `json:"default_technician"`
	DefaultTechnicianName *string   `json:"default_technician_name"`
	IsUsable              bool      `json:"is_usable"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
