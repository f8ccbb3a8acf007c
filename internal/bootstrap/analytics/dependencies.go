package analytics

import (
	"log"

	"retail-churn-analytics/config"
	"retail-churn-analytics/internal/redis"
	"retail-churn-analytics/internal/services"
	"retail-churn-analytics/internal/storage"
	"retail-churn-analytics/internal/storage/sqlite"
)

// Dependencies содержит все зависимости аналитического сервиса
type Dependencies struct {
	StorageConn     *sqlite.SQLiteStorage
	StorageRepo     storage.DatasetRepository
	RedisClient     redis.ClientInterface
	DatasetService  services.DatasetService
	AnalysisService services.AnalysisService
}

// InitializeDependencies инициализирует все зависимости аналитического сервиса.
// Redis необязателен: при недоступности сервис работает без кэша снапшота.
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Redis
	log.Println("Connecting to Redis...")
	var cache redis.ClientInterface
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (snapshot cache disabled): %v", err)
	} else {
		log.Println("Redis connection established")
		cache = redisClient
	}

	datasetService := services.NewDatasetServiceWithRepository(storageRepo)
	analysisService := services.NewAnalysisServiceWithDependencies(cache, storageRepo)

	// Восстанавливаем набор данных прошлого запуска, если он сохранен
	if restored, err := datasetService.Restore(); err != nil {
		log.Printf("Warning: Failed to restore stored dataset: %v", err)
	} else if restored {
		log.Println("Stored dataset restored from SQLite")
	}

	return &Dependencies{
		StorageConn:     storageConn,
		StorageRepo:     storageRepo,
		RedisClient:     cache,
		DatasetService:  datasetService,
		AnalysisService: analysisService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
