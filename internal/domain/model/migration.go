package model

import (
	"strings"
	"time"
)

// PhaseName 移行フェーズの識別子
type PhaseName string

// 移行フェーズは依存順に固定されている:
// コースに地域が付く前にラウンドは処理できず、
// ユーザーに地域が付く前に投稿は処理できない
const (
	PhaseUsers        PhaseName = "users"
	PhaseCourses      PhaseName = "courses"
	PhaseRounds       PhaseName = "rounds"
	PhasePosts        PhaseName = "posts"
	PhaseLeaderboards PhaseName = "leaderboards"
)

// AllPhases 依存順のフェーズ一覧を取得する
func AllPhases() []PhaseName {
	return []PhaseName{PhaseUsers, PhaseCourses, PhaseRounds, PhasePosts, PhaseLeaderboards}
}

// PhaseStatus フェーズの状態遷移（Pending → Running → Completed | Failed）
type PhaseStatus string

const (
	PhasePending   PhaseStatus = "pending"
	PhaseRunning   PhaseStatus = "running"
	PhaseCompleted PhaseStatus = "completed"
	PhaseFailed    PhaseStatus = "failed"
)

// PhaseResult 1フェーズ分の構造化された実行結果。
// コンソール出力のキャプチャなしでオーケストレーターを検証できるようにする
type PhaseResult struct {
	Phase      PhaseName   `json:"phase"`
	Status     PhaseStatus `json:"status"`
	Processed  int         `json:"processed"` // フェーズで読み込んだエンティティ数
	Updated    int         `json:"updated"`   // regionKeyを書き込んだ（またはdry-runで書き込む予定だった）件数
	Skipped    int         `json:"skipped"`   // 既に付与済み・位置情報不足でスキップした件数
	Errors     int         `json:"errors"`    // ルックアップミス・書き込み失敗の件数
	StartedAt  time.Time   `json:"startedAt"`
	FinishedAt time.Time   `json:"finishedAt"`
}

// MigrationReport 移行実行全体のレポート
type MigrationReport struct {
	RunID      string        `json:"runId"`
	DryRun     bool          `json:"dryRun"`
	Phases     []PhaseResult `json:"phases"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// TotalErrors 全フェーズのエラー件数合計を取得する
func (r *MigrationReport) TotalErrors() int {
	total := 0
	for _, phase := range r.Phases {
		total += phase.Errors
	}
	return total
}

// ParsePhases カンマ区切りのフェーズ指定をパースする。
// 空文字列および "all" は全フェーズ実行を意味する
func ParsePhases(value string) ([]PhaseName, error) {
	if value == "" || value == "all" {
		return AllPhases(), nil
	}
	valid := make(map[PhaseName]bool)
	for _, p := range AllPhases() {
		valid[p] = true
	}
	var phases []PhaseName
	for _, part := range strings.Split(value, ",") {
		name := PhaseName(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !valid[name] {
			return nil, &UnknownPhaseError{Phase: string(name)}
		}
		phases = append(phases, name)
	}
	return phases, nil
}

// UnknownPhaseError 未知のフェーズ名が指定された場合のエラー
type UnknownPhaseError struct {
	Phase string
}

func (e *UnknownPhaseError) Error() string {
	return "未知のフェーズ名です: " + e.Phase
}
