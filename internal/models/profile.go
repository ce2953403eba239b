package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerProfile - игровой профиль, привязанный 1:1 к аккаунту во внешнем identity provider.
// Level и Experience принадлежат системе: уровень всегда выводится из опыта,
// прямое изменение этих полей через API запрещено.
type PlayerProfile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	House       *House    `json:"house,omitempty" db:"house"`
	Level       int       `json:"level" db:"level"`
	Experience  int       `json:"xp" db:"experience"`
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Latitude    *float64  `json:"current_latitude,omitempty" db:"current_latitude"`
	Longitude   *float64  `json:"current_longitude,omitempty" db:"current_longitude"`
	LastSeen    time.Time `json:"last_seen" db:"last_seen"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// HasPosition reports whether the player has a known last position.
func (p *PlayerProfile) HasPosition() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// ProfileUpdate carries the caller-mutable profile fields. Nil means "leave as is".
// Level, experience and identity are system-owned and deliberately absent here.
type ProfileUpdate struct {
	DisplayName *string
	House       *House
	AvatarURL   *string
}

// Wand - каталожная запись волшебной палочки. Назначается игроку отдельной связью.
type Wand struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Core         WandCore  `json:"core" db:"core"`
	WoodType     WoodType  `json:"wood_type" db:"wood_type"`
	LengthInches float64   `json:"length_inches" db:"length_inches"`
	Flexibility  string    `json:"flexibility" db:"flexibility"`
}

// GPSTrace is a single append-only point of a player's movement history.
type GPSTrace struct {
	ID         uuid.UUID `json:"id" db:"id"`
	PlayerID   uuid.UUID `json:"player_id" db:"player_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}
