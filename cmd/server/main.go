package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"

	"github.com/glucoguard/backend/internal/advice"
	"github.com/glucoguard/backend/internal/nlp"
	"github.com/glucoguard/backend/internal/risk"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Port        string
	DatabaseURL string
	ModelPath   string
	EnableDB    bool
}

type ChatMessage struct {
	Message string            `json:"message"`
	UserID  string            `json:"user_id"`
	Context map[string]string `json:"context"`
}

type MealRequest struct {
	RecentGlucose *int `json:"recent_glucose"`
}

// Fixed follow-up list returned with every risk prediction.
var riskRecommendations = []string{
	"Monitor blood sugar regularly",
	"Follow prescribed medication schedule",
	"Maintain healthy diet and exercise routine",
	"Schedule regular check-ups with healthcare provider",
}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	model, err := risk.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("model load failed: %v", err)
	}
	log.Printf("risk model ready: %d features, %d classes", len(model.Features()), len(model.Labels()))

	ctx := context.Background()
	var db HealthChecker
	if cfg.EnableDB {
		db, err = connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer db.(interface{ Close() }).Close()
	}

	router := setupRouter(db, nlp.NewAnalyzer(), model)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("server listening on :%s", cfg.Port)
	waitForShutdown(server)
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ModelPath:   os.Getenv("MODEL_PATH"),
		EnableDB:    strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	return cfg, nil
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

func setupRouter(db HealthChecker, analyzer *nlp.Analyzer, model *risk.Model) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"analyzer":  "rules",
		})
	})

	router.POST("/ai-chat", func(c *gin.Context) {
		var msg ChatMessage
		if !bindJSON(c, &msg) {
			return
		}

		result := analyzer.Analyze(msg.Message, msg.Context)
		c.JSON(http.StatusOK, gin.H{
			"analysis_id": newAnalysisID(),
			"response":    chatResponseText(result),
			"confidence":  result.Confidence,
			"category":    result.Intent,
			"suggestions": topN(result.Recommendations, 3),
			"enhanced_analysis": gin.H{
				"sentiment":         result.SentimentScore,
				"emotion":           result.Emotion,
				"entities":          result.Entities,
				"keywords":          result.Keywords,
				"diabetes_insights": result.Insights,
			},
		})
	})

	router.POST("/analyze-text", func(c *gin.Context) {
		var msg ChatMessage
		if !bindJSON(c, &msg) {
			return
		}

		result := analyzer.Analyze(msg.Message, msg.Context)
		c.JSON(http.StatusOK, gin.H{
			"analysis_id": newAnalysisID(),
			"analysis": gin.H{
				"intent":            result.Intent,
				"sentiment":         result.SentimentScore,
				"emotion":           result.Emotion,
				"urgency":           result.UrgencyLevel,
				"entities":          result.Entities,
				"keywords":          result.Keywords,
				"diabetes_insights": result.Insights,
			},
			"insights": gin.H{
				"primary_concern": result.Intent,
				"urgency_level":   result.UrgencyLevel,
				"sentiment":       result.SentimentScore,
				"action_needed":   result.ActionNeeded(),
			},
		})
	})

	router.POST("/predict-risk", func(c *gin.Context) {
		var patient risk.PatientInput
		if !bindJSON(c, &patient) {
			return
		}

		if details := validatePatient(patient); len(details) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation_failed",
				"details": details,
			})
			return
		}

		prediction := model.Predict(patient)
		c.JSON(http.StatusOK, gin.H{
			"risk_category":   prediction.RiskCategory,
			"risk_level":      prediction.RiskLevel,
			"probabilities":   prediction.Probabilities,
			"recommendations": riskRecommendations,
		})
	})

	router.POST("/meal-advice", func(c *gin.Context) {
		var req MealRequest
		if !bindJSON(c, &req) {
			return
		}

		reading, hasReading := 0, false
		if req.RecentGlucose != nil {
			reading, hasReading = *req.RecentGlucose, true
		}
		c.JSON(http.StatusOK, gin.H{"advice": advice.Meal(reading, hasReading)})
	})

	router.POST("/exercise-advice", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"advice": advice.Exercise()})
	})

	router.POST("/medication-advice", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"advice": advice.Medication()})
	})

	router.GET("/education", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"topics": advice.Education()})
	})

	router.GET("/education/:topic", func(c *gin.Context) {
		topic, ok := advice.EducationTopic(c.Param("topic"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown topic"})
			return
		}
		c.JSON(http.StatusOK, topic)
	})

	return router
}

// bindJSON decodes the request body into out, answering the request itself on
// failure: 413 when the body-size limit tripped, 400 for anything else.
func bindJSON(c *gin.Context, out any) bool {
	err := c.ShouldBindJSON(out)
	if err == nil {
		return true
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
	return false
}

func chatResponseText(result nlp.Result) string {
	return fmt.Sprintf("Based on your message, I detected: %s intent with %s urgency. %s",
		result.Intent, result.UrgencyLevel, result.Recommendations[0])
}

func validatePatient(p risk.PatientInput) []string {
	details := []string{}
	if p.Age <= 0 || p.Age > 120 {
		details = append(details, "age must be between 1 and 120")
	}
	if p.BMI <= 0 || p.BMI > 100 {
		details = append(details, "bmi must be between 1 and 100")
	}
	if p.Weight <= 0 || p.Weight > 400 {
		details = append(details, "weight must be between 1 and 400 kg")
	}
	if p.Height <= 0 || p.Height > 250 {
		details = append(details, "height must be between 1 and 250 cm")
	}
	if p.SystolicBP < 50 || p.SystolicBP > 260 {
		details = append(details, "systolic blood pressure must be between 50 and 260")
	}
	if p.FamilyHistory != 0 && p.FamilyHistory != 1 {
		details = append(details, "family_history must be 0 or 1")
	}
	if p.PhysicalActivity != 0 && p.PhysicalActivity != 1 {
		details = append(details, "physical_activity must be 0 or 1")
	}
	if p.DietQuality < 0 || p.DietQuality > 10 {
		details = append(details, "diet_quality must be between 0 and 10")
	}
	if p.Location < 0 {
		details = append(details, "location must be a non-negative region code")
	}
	if p.Smoking != 0 && p.Smoking != 1 {
		details = append(details, "smoking must be 0 or 1")
	}
	return details
}

func newAnalysisID() string {
	return ulid.Make().String()
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
