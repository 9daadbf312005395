package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"Fairway-App/internal/domain/helper"
	"Fairway-App/internal/domain/model"
	"Fairway-App/internal/domain/repository"
	"Fairway-App/internal/domain/service"
	"Fairway-App/internal/metrics"
)

// MigrationOptions 移行実行のオプション
type MigrationOptions struct {
	Phases []model.PhaseName // 空なら全フェーズを依存順に実行
	DryRun bool              // trueなら解決とログ出力のみ行い、永続化を抑止する
}

// RegionMigrationUseCase は地域タグ付けバッチ移行のオーケストレーター
type RegionMigrationUseCase interface {
	// Run 指定フェーズを依存順に実行し、構造化レポートを返す。
	// 個々のエンティティの失敗はフェーズを止めず、カウンターに反映される
	Run(ctx context.Context, opts MigrationOptions) (*model.MigrationReport, error)
}

// regionMigrationUseCase はRegionMigrationUseCaseの実装。
//
// 実行は単一コーディネーターによる逐次処理で、エンティティ間の共有可変状態は持たない。
// フェーズごとに構築するルックアップマップ（コースID→コース、ユーザーID→プロフィール）は
// 全件をメモリに載せるため、レコード数が非常に大きくなるとスケーラビリティの上限になる。
// 正しさの問題ではないが、件数が増えた場合はストリーミング化を検討すること
type regionMigrationUseCase struct {
	store      repository.RecordStore
	resolver   service.RegionResolver
	builder    service.LeaderboardBuilder
	normalizer *helper.LocationNormalizer
	limiter    *rate.Limiter // ストアの書き込みレート制限
	now        func() time.Time
}

// writesPerSecond Firestoreの書き込みクォータを超えないための上限
const writesPerSecond = 25

// NewRegionMigrationUseCase 新しいRegionMigrationUseCaseインスタンスを作成
func NewRegionMigrationUseCase(
	store repository.RecordStore,
	resolver service.RegionResolver,
	builder service.LeaderboardBuilder,
) RegionMigrationUseCase {
	return &regionMigrationUseCase{
		store:      store,
		resolver:   resolver,
		builder:    builder,
		normalizer: helper.NewLocationNormalizer(),
		limiter:    rate.NewLimiter(rate.Limit(writesPerSecond), 1),
		now:        time.Now,
	}
}

// Run は移行実行の主要処理
func (u *regionMigrationUseCase) Run(ctx context.Context, opts MigrationOptions) (*model.MigrationReport, error) {
	phases := opts.Phases
	if len(phases) == 0 {
		phases = model.AllPhases()
	}

	report := &model.MigrationReport{
		RunID:     fmt.Sprintf("migration_%s", uuid.New().String()),
		DryRun:    opts.DryRun,
		StartedAt: u.now(),
	}
	metrics.MigrationRunsTotal.Inc()

	mode := "commit"
	if opts.DryRun {
		mode = "dry-run"
	}
	log.Printf("🚀 地域移行開始 (runId: %s, mode: %s, phases: %v)", report.RunID, mode, phases)

	for _, phase := range phases {
		result := u.runPhase(ctx, phase, opts.DryRun)
		report.Phases = append(report.Phases, result)
		log.Printf("📊 フェーズ %s: processed=%d updated=%d skipped=%d errors=%d (%s)",
			phase, result.Processed, result.Updated, result.Skipped, result.Errors, result.Status)
	}

	report.FinishedAt = u.now()
	log.Printf("✅ 地域移行完了 (runId: %s, errors: %d)", report.RunID, report.TotalErrors())
	return report, nil
}

// runPhase 1フェーズを状態機械（Pending → Running → Completed | Failed）として実行する。
// フェーズ全体の失敗（コレクションの列挙不能など）のみFailedになり、
// エンティティ単位の失敗はエラーカウントに留まる
func (u *regionMigrationUseCase) runPhase(ctx context.Context, phase model.PhaseName, dryRun bool) model.PhaseResult {
	result := model.PhaseResult{
		Phase:     phase,
		Status:    model.PhaseRunning,
		StartedAt: u.now(),
	}
	log.Printf("▶️ フェーズ %s 開始", phase)

	var err error
	switch phase {
	case model.PhaseUsers:
		err = u.tagCollection(ctx, model.CollectionUsers, dryRun, &result)
	case model.PhaseCourses:
		err = u.tagCollection(ctx, model.CollectionCourses, dryRun, &result)
	case model.PhaseRounds:
		err = u.inheritRegion(ctx, model.CollectionRounds, "courseId", model.CollectionCourses, dryRun, &result)
	case model.PhasePosts:
		err = u.inheritRegion(ctx, model.CollectionPosts, "ownerId", model.CollectionUsers, dryRun, &result)
	case model.PhaseLeaderboards:
		err = u.rebuildLeaderboards(ctx, dryRun, &result)
	default:
		err = &model.UnknownPhaseError{Phase: string(phase)}
	}

	result.FinishedAt = u.now()
	metrics.PhaseDurationSeconds.WithLabelValues(string(phase)).Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())

	if err != nil {
		result.Status = model.PhaseFailed
		log.Printf("❌ フェーズ %s 失敗: %v", phase, err)
		return result
	}
	result.Status = model.PhaseCompleted
	return result
}

// tagCollection 位置情報を直接持つコレクション（users, courses）に地域タグを付与する
func (u *regionMigrationUseCase) tagCollection(ctx context.Context, collection string, dryRun bool, result *model.PhaseResult) error {
	documents, err := u.store.ListAll(ctx, collection)
	if err != nil {
		return fmt.Errorf("コレクション %s の列挙に失敗: %w", collection, err)
	}

	for _, doc := range documents {
		result.Processed++

		// 冪等スキップ: 既にタグ付け済みのエンティティは再計算しない
		if regionKey, _ := doc.Data[model.FieldRegionKey].(string); regionKey != "" {
			u.countSkip(result)
			continue
		}

		point, ok := u.normalizer.Normalize(doc.Data)
		if !ok {
			// 必須フィールド欠落はハードエラーではなくスキップ
			u.countSkip(result)
			continue
		}

		regionKey, err := u.resolver.Assign(point)
		if err != nil {
			if errors.Is(err, model.ErrMissingLocationData) {
				u.countSkip(result)
				continue
			}
			log.Printf("❌ %s/%s の地域判定に失敗: %v", collection, doc.ID, err)
			u.countError(result)
			continue
		}

		if err := u.persistRegion(ctx, collection, doc.ID, regionKey, dryRun); err != nil {
			log.Printf("❌ %s/%s の書き込みに失敗: %v", collection, doc.ID, err)
			u.countError(result)
			continue
		}
		u.countUpdate(result)
	}
	return nil
}

// inheritRegion 親エンティティ（コース・ユーザー）から地域キーを継承するコレクションを処理する。
// 親のルックアップマップを先に全件構築してから依存フェーズを回す
func (u *regionMigrationUseCase) inheritRegion(ctx context.Context, collection, parentField, parentCollection string, dryRun bool, result *model.PhaseResult) error {
	parents, err := u.store.ListAll(ctx, parentCollection)
	if err != nil {
		return fmt.Errorf("コレクション %s の列挙に失敗: %w", parentCollection, err)
	}
	regionByParent := make(map[string]string, len(parents))
	for _, parent := range parents {
		if regionKey, _ := parent.Data[model.FieldRegionKey].(string); regionKey != "" {
			regionByParent[parent.ID] = regionKey
		}
	}

	documents, err := u.store.ListAll(ctx, collection)
	if err != nil {
		return fmt.Errorf("コレクション %s の列挙に失敗: %w", collection, err)
	}

	for _, doc := range documents {
		result.Processed++

		if regionKey, _ := doc.Data[model.FieldRegionKey].(string); regionKey != "" {
			u.countSkip(result)
			continue
		}

		parentID, _ := doc.Data[parentField].(string)
		regionKey, ok := regionByParent[parentID]
		if parentID == "" || !ok {
			// 参照先が無い、または参照先が未タグの場合はルックアップミス
			log.Printf("⚠️ %s/%s: %v (%s=%q)", collection, doc.ID, model.ErrLookupMiss, parentField, parentID)
			u.countError(result)
			continue
		}

		if err := u.persistRegion(ctx, collection, doc.ID, regionKey, dryRun); err != nil {
			log.Printf("❌ %s/%s の書き込みに失敗: %v", collection, doc.ID, err)
			u.countError(result)
			continue
		}
		u.countUpdate(result)
	}
	return nil
}

// rebuildLeaderboards regionKey付きラウンド全件からリーダーボードを全置き換えで再構築する
func (u *regionMigrationUseCase) rebuildLeaderboards(ctx context.Context, dryRun bool, result *model.PhaseResult) error {
	roundDocs, err := u.store.ListAll(ctx, model.CollectionRounds)
	if err != nil {
		return fmt.Errorf("ラウンドの列挙に失敗: %w", err)
	}
	userDocs, err := u.store.ListAll(ctx, model.CollectionUsers)
	if err != nil {
		return fmt.Errorf("ユーザーの列挙に失敗: %w", err)
	}
	courseDocs, err := u.store.ListAll(ctx, model.CollectionCourses)
	if err != nil {
		return fmt.Errorf("コースの列挙に失敗: %w", err)
	}

	rounds := make([]model.Round, 0, len(roundDocs))
	for _, doc := range roundDocs {
		round := model.RoundFromDocument(doc.ID, doc.Data)
		if round.RegionKey == "" {
			continue // 未タグのラウンドは集計対象外
		}
		rounds = append(rounds, round)
	}
	profiles := make(map[string]model.UserProfile, len(userDocs))
	for _, doc := range userDocs {
		profiles[doc.ID] = model.ProfileFromDocument(doc.ID, doc.Data)
	}
	courses := make(map[string]model.Course, len(courseDocs))
	for _, doc := range courseDocs {
		courses[doc.ID] = model.CourseFromDocument(doc.ID, doc.Data)
	}

	entries := u.builder.Build(rounds, profiles, courses, u.now())
	log.Printf("🏆 リーダーボード %d 件を構築 (対象ラウンド: %d)", len(entries), len(rounds))

	for _, entry := range entries {
		result.Processed++
		if dryRun {
			log.Printf("🔍 [dry-run] リーダーボード %s は書き込みをスキップ", entry.DocumentID())
			u.countUpdate(result)
			continue
		}
		if err := u.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("レート制限の待機に失敗: %w", err)
		}
		if err := u.store.Set(ctx, model.CollectionLeaderboards, entry.DocumentID(), entry); err != nil {
			log.Printf("❌ リーダーボード %s の書き込みに失敗: %v", entry.DocumentID(), err)
			u.countError(result)
			continue
		}
		metrics.LeaderboardSnapshotsTotal.Inc()
		u.countUpdate(result)
	}
	return nil
}

// persistRegion regionKeyと更新時刻を書き込む。dry-run時は永続化を抑止する
func (u *regionMigrationUseCase) persistRegion(ctx context.Context, collection, id, regionKey string, dryRun bool) error {
	if dryRun {
		log.Printf("🔍 [dry-run] %s/%s -> %s", collection, id, regionKey)
		return nil
	}
	if err := u.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("レート制限の待機に失敗: %w", err)
	}
	assignment := model.RegionAssignment{RegionKey: regionKey, UpdatedAt: u.now()}
	if err := u.store.UpdateFields(ctx, collection, id, map[string]any{
		model.FieldRegionKey:       assignment.RegionKey,
		model.FieldRegionUpdatedAt: assignment.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("%w: %v", model.ErrWriteFailure, err)
	}
	log.Printf("✏️ %s/%s -> %s", collection, id, regionKey)
	return nil
}

func (u *regionMigrationUseCase) countUpdate(result *model.PhaseResult) {
	result.Updated++
	metrics.PhaseEntitiesTotal.WithLabelValues(string(result.Phase), "updated").Inc()
}

func (u *regionMigrationUseCase) countSkip(result *model.PhaseResult) {
	result.Skipped++
	metrics.PhaseEntitiesTotal.WithLabelValues(string(result.Phase), "skipped").Inc()
}

func (u *regionMigrationUseCase) countError(result *model.PhaseResult) {
	result.Errors++
	metrics.PhaseEntitiesTotal.WithLabelValues(string(result.Phase), "errors").Inc()
}
