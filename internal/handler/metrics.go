package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики доменных событий. HTTP-метрики собирает gin-prometheus отдельно.
var (
	questsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_quests_accepted_total",
		Help: "Number of quest acceptances.",
	})
	questsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_quests_completed_total",
		Help: "Number of completed quests with rewards credited.",
	})
	reportsSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "game_map_reports_submitted_total",
		Help: "Number of submitted map reports by type.",
	}, []string{"report_type"})
	reportVerificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_report_verifications_total",
		Help: "Number of peer verifications recorded.",
	})
	positionUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_position_updates_total",
		Help: "Number of player position updates.",
	})
)
