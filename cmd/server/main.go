package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Fairway-App/internal/domain/service"
	fsinfra "Fairway-App/internal/infrastructure/firestore"
	"Fairway-App/internal/handler"
	"Fairway-App/internal/metrics"
	"Fairway-App/internal/repository"
	"Fairway-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		log.Fatal("GOOGLE_CLOUD_PROJECT環境変数が設定されていません")
	}

	fmt.Println("Initializing Firestore client...")
	fsClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer fsClient.Close()

	catalogPath := os.Getenv("REGION_CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "config/regions.yaml"
	}
	catalog, err := repository.NewYAMLRegionCatalogRepository(catalogPath).Load(ctx)
	if err != nil {
		log.Fatalf("地域カタログのロード失敗: %v", err)
	}

	store := repository.NewFirestoreRecordStore(fsClient.GetClient())
	migration := usecase.NewRegionMigrationUseCase(
		store,
		service.NewRegionResolver(catalog),
		service.NewLeaderboardBuilder(),
	)

	migrationHandler := handler.NewMigrationHandler(migration)
	leaderboardHandler := handler.NewLeaderboardHandler(store)

	router := gin.Default()
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "Fairway-App", "regions": catalog.Len()})
	})
	router.POST("/api/migrations", migrationHandler.PostMigration)
	router.GET("/api/migrations/:runId", migrationHandler.GetMigration)
	router.GET("/api/leaderboards/:regionKey", leaderboardHandler.GetLeaderboards)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Fairway-App admin server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
