package models

import (
	"time"

	"github.com/google/uuid"
)

// ExperiencePerLevel - сколько опыта нужно на один уровень.
// level = floor(xp / ExperiencePerLevel) + 1
const ExperiencePerLevel = 1000

// GameItem is an immutable catalog entry. Rarity is 1 (common) to 5 (legendary).
type GameItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ItemType    ItemType  `json:"item_type" db:"item_type"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	Rarity      int       `json:"rarity" db:"rarity"`
}

// InventoryEntry - количество предмета у игрока. Пара (player, item) уникальна:
// повторное получение предмета увеличивает quantity, а не создает новую строку.
type InventoryEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PlayerID  uuid.UUID `json:"player_id" db:"player_id"`
	ItemID    uuid.UUID `json:"item_id" db:"item_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Item      *GameItem `json:"item,omitempty" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Quest is a catalog quest definition. Inactive quests are never offered.
type Quest struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	XPReward         int        `json:"xp_reward" db:"xp_reward"`
	ItemRewardID     *uuid.UUID `json:"item_reward_id,omitempty" db:"item_reward_id"`
	MinPlayerLevel   int        `json:"min_player_level" db:"min_player_level"`
	TargetLocationID *uuid.UUID `json:"target_location_id,omitempty" db:"target_location_id"`
	IsRepeatable     bool       `json:"is_repeatable" db:"is_repeatable"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// QuestProgress - state machine прохождения квеста для пары (player, quest).
//
//	PENDING --accept--> ACCEPTED --advance--> IN_PROGRESS --complete--> COMPLETED
//	ACCEPTED/IN_PROGRESS --advance(FAILED)--> FAILED
type QuestProgress struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	PlayerID    uuid.UUID   `json:"player_id" db:"player_id"`
	QuestID     uuid.UUID   `json:"quest_id" db:"quest_id"`
	Status      QuestStatus `json:"status" db:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty" db:"started_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
	Quest       *Quest      `json:"quest,omitempty" db:"-"`
}

// CompletionReward describes exactly what a quest completion granted,
// so callers can assert on the outcome instead of re-reading the profile.
type CompletionReward struct {
	Progress      *QuestProgress `json:"progress"`
	XPGranted     int            `json:"xp_granted"`
	NewExperience int            `json:"new_experience"`
	NewLevel      int            `json:"new_level"`
	LeveledUp     bool           `json:"leveled_up"`
	GrantedItem   *GameItem      `json:"granted_item,omitempty"`
}
