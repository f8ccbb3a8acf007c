package main

import "retail-churn-analytics/internal/bootstrap/analytics"

// @title Retail Customer Analytics API
// @version 1.0
// @description Сервис аналитики розничных клиентов: RFM-сегментация и прогноз оттока
// @host localhost:8080
// @BasePath /api/v1
func main() { analytics.StartAnalyticsService() }
