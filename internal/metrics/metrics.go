package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MigrationRunsTotal 移行実行の総数（dry-run含む）
	MigrationRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairway_migration_runs_total",
		Help: "Total number of migration runs",
	})
	// PhaseEntitiesTotal フェーズ×結果ごとのエンティティ処理件数
	PhaseEntitiesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fairway_migration_entities_total",
		Help: "Entities handled per phase and outcome",
	}, []string{"phase", "outcome"})
	// PhaseDurationSeconds フェーズ所要時間
	PhaseDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fairway_migration_phase_duration_seconds",
		Help:    "Phase duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
	}, []string{"phase"})
	// LeaderboardSnapshotsTotal 書き込んだリーダーボードスナップショット件数
	LeaderboardSnapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairway_leaderboard_snapshots_total",
		Help: "Total leaderboard snapshots written",
	})
)

func init() {
	prometheus.MustRegister(MigrationRunsTotal, PhaseEntitiesTotal, PhaseDurationSeconds, LeaderboardSnapshotsTotal)
}

// Handler /metrics 用のHTTPハンドラーを取得する
func Handler() http.Handler {
	return promhttp.Handler()
}
