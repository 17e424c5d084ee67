package model

import "time"

// Team описывает ремонтную команду и множество её участников.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	MemberIDs []int64   `json:"member_ids"`
	Members   []User    `json:"members"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember сообщает, входит ли пользователь в команду.
func (t Team) HasMember(userID int64) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
