package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Redis    RedisConfig
	Server   ServerConfig
	Analysis AnalysisConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite с исходными таблицами
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type ServerConfig struct {
	AnalyticsPort int
}

// AnalysisConfig содержит параметры аналитического конвейера.
// Границы риск-уровней фиксированы и не пересчитываются по выборке.
type AnalysisConfig struct {
	ChurnThresholdDays int     // Дней без покупок до признания оттока
	ClusterCount       int     // Число кластеров для сегментации
	TrainSplitRatio    float64 // Доля обучающей выборки
	RandomSeed         int64   // Фиксированное зерно для воспроизводимости
	MediumRiskCutoff   float64 // Нижняя граница уровня Medium
	HighRiskCutoff     float64 // Нижняя граница уровня High
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/retail_analytics.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Server: ServerConfig{
			AnalyticsPort: getEnvAsInt("ANALYTICS_SERVICE_PORT", 8080),
		},
		Analysis: AnalysisConfig{
			ChurnThresholdDays: getEnvAsInt("CHURN_THRESHOLD_DAYS", 90),
			ClusterCount:       getEnvAsInt("CLUSTER_COUNT", 4),
			TrainSplitRatio:    getEnvAsFloat("TRAIN_SPLIT_RATIO", 0.8),
			RandomSeed:         int64(getEnvAsInt("RANDOM_SEED", 42)),
			MediumRiskCutoff:   getEnvAsFloat("MEDIUM_RISK_CUTOFF", 0.3),
			HighRiskCutoff:     getEnvAsFloat("HIGH_RISK_CUTOFF", 0.7),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
