package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Backend selectors for pluggable infrastructure.
const (
	UserStoreMemory   = "memory"
	UserStorePostgres = "postgres"

	ArtifactsLocal = "local"
	ArtifactsMinio = "minio"
	ArtifactsGCS   = "gcs"

	MQNone     = "none"
	MQRabbitMQ = "rabbitmq"
	MQPubSub   = "pubsub"
)

type Config struct {
	ServerPort int

	// UserStore selects the credential backend: "memory" (default) or "postgres".
	UserStore string
	Database  DatabaseConfig

	// Artifacts selects where model artifacts are loaded from at startup.
	Artifacts ArtifactsConfig
	Minio     MinioConfig
	GCS       GCSConfig

	// MQ selects the prediction event broker: "none" (default), "rabbitmq" or "pubsub".
	MQ       MQConfig
	RabbitMQ RabbitMQConfig
	PubSub   PubSubConfig

	// PredictionLogPath is the CSV file every prediction is appended to.
	PredictionLogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

type ArtifactsConfig struct {
	Backend string
	Dir     string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	ProjectID       string
	Bucket          string
	CredentialsFile string
}

type MQConfig struct {
	Backend string
	Channel string
}

type RabbitMQConfig struct {
	URL             string
	QueueDurable    bool
	QueueAutoDelete bool
}

type PubSubConfig struct {
	ProjectID       string
	CredentialsFile string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "advisor"),
		Password: getEnv("DB_PASSWORD", "password"),
		DBName:   getEnv("DB_NAME", "advisor_db"),
		UseSSL:   getEnvBool("DB_USE_SSL", false),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		UserStore:  getEnv("USER_STORE", UserStoreMemory),
		Database:   dbConfig,
		Artifacts: ArtifactsConfig{
			Backend: getEnv("ARTIFACTS_BACKEND", ArtifactsLocal),
			Dir:     getEnv("ARTIFACTS_DIR", "artifacts"),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "advisor-artifacts"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		GCS: GCSConfig{
			ProjectID:       getEnv("GCS_PROJECT_ID", ""),
			Bucket:          getEnv("GCS_BUCKET", ""),
			CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
		},
		MQ: MQConfig{
			Backend: getEnv("MQ_BACKEND", MQNone),
			Channel: getEnv("MQ_CHANNEL", "predictions"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:             getEnv("RABBITMQ_URL", ""),
			QueueDurable:    getEnvBool("RABBITMQ_QUEUE_DURABLE", true),
			QueueAutoDelete: getEnvBool("RABBITMQ_QUEUE_AUTO_DELETE", false),
		},
		PubSub: PubSubConfig{
			ProjectID:       getEnv("PUBSUB_PROJECT_ID", ""),
			CredentialsFile: getEnv("PUBSUB_CREDENTIALS_FILE", ""),
		},
		PredictionLogPath: getEnv("PREDICTION_LOG_PATH", "investor_data.csv"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return valueStr == "true" || valueStr == "1"
	}
	return defaultValue
}
