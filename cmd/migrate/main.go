package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"Fairway-App/internal/database"
	"Fairway-App/internal/domain/model"
	domainrepo "Fairway-App/internal/domain/repository"
	"Fairway-App/internal/domain/service"
	pgdatabase "Fairway-App/internal/infrastructure/database"
	fsinfra "Fairway-App/internal/infrastructure/firestore"
	"Fairway-App/internal/repository"
	"Fairway-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	var (
		phasesFlag  = flag.String("phases", "all", "実行するフェーズ（カンマ区切り: users,courses,rounds,posts,leaderboards）")
		dryRun      = flag.Bool("dry-run", false, "書き込みを抑止して解決とログ出力のみ行う")
		catalogPath = flag.String("catalog", "", "地域カタログYAMLのパス（省略時はREGION_CATALOG_PATH）")
		catalogSrc  = flag.String("catalog-source", "yaml", "カタログの取得元 (yaml | postgres)")
		storeKind   = flag.String("store", "firestore", "レコードストア (firestore | supabase)")
	)
	flag.Parse()

	phases, err := model.ParsePhases(*phasesFlag)
	if err != nil {
		log.Fatalf("フェーズ指定が不正です: %v", err)
	}

	ctx := context.Background()

	// カタログのロード失敗・ストア初期化失敗はフェーズ開始前の致命的エラー
	catalog, err := loadCatalog(ctx, *catalogSrc, *catalogPath)
	if err != nil {
		log.Fatalf("地域カタログのロードに失敗しました: %v", err)
	}

	store, cleanup, err := buildStore(ctx, *storeKind)
	if err != nil {
		log.Fatalf("レコードストアの初期化に失敗しました: %v", err)
	}
	defer cleanup()

	migration := usecase.NewRegionMigrationUseCase(
		store,
		service.NewRegionResolver(catalog),
		service.NewLeaderboardBuilder(),
	)

	report, err := migration.Run(ctx, usecase.MigrationOptions{
		Phases: phases,
		DryRun: *dryRun,
	})
	if err != nil {
		log.Fatalf("移行の実行に失敗しました: %v", err)
	}

	for _, phase := range report.Phases {
		fmt.Printf("  %-14s %-10s processed=%-6d updated=%-6d skipped=%-6d errors=%d\n",
			phase.Phase, phase.Status, phase.Processed, phase.Updated, phase.Skipped, phase.Errors)
	}

	for _, phase := range report.Phases {
		if phase.Status == model.PhaseFailed {
			os.Exit(1)
		}
	}
}

// loadCatalog 指定された取得元から地域カタログをロードする
func loadCatalog(ctx context.Context, source, path string) (*model.RegionCatalog, error) {
	switch source {
	case "postgres":
		pgClient, err := pgdatabase.NewPostgreSQLClient()
		if err != nil {
			return nil, err
		}
		defer pgClient.Close()
		return repository.NewPostgresRegionCatalogRepository(pgClient).Load(ctx)
	case "yaml":
		if path == "" {
			path = os.Getenv("REGION_CATALOG_PATH")
		}
		if path == "" {
			path = "config/regions.yaml"
		}
		return repository.NewYAMLRegionCatalogRepository(path).Load(ctx)
	default:
		return nil, fmt.Errorf("未知のカタログ取得元です: %s", source)
	}
}

// buildStore 指定された種類のレコードストアを初期化する
func buildStore(ctx context.Context, kind string) (domainrepo.RecordStore, func(), error) {
	switch kind {
	case "supabase":
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, err
		}
		return repository.NewSupabaseRecordStore(client), func() {}, nil
	case "firestore":
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			return nil, nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT環境変数が設定されていません")
		}
		client, err := fsinfra.NewFirestoreClient(ctx, projectID)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFirestoreRecordStore(client.GetClient()), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("未知のストア種別です: %s", kind)
	}
}
