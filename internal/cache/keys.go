package cache

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// ProfileTTL держит профиль в кэше недолго: позиция и опыт меняются часто.
	ProfileTTL = 30 * time.Second

	// DashboardTTL bounds the cost of the aggregate query.
	DashboardTTL = 15 * time.Second
)

// ProfileKey is the cache key for a player profile, keyed by account id.
func ProfileKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", userID)
}

// DashboardKey is the cache key for the dashboard aggregate.
func DashboardKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s", userID)
}
