package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const OrdersTopic = "orders"

// LoadEnv reads an optional .env file; variables already set in the
// environment win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func ListenAddr(defaultPort string) string {
	return ":" + GetEnv("PORT", defaultPort)
}

func MustInitPostgres() *sql.DB {
	dbHost := GetEnv("DB_HOST", "localhost")
	dbPort := GetEnv("DB_PORT", "5432")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	if dbName == "" || dbUser == "" {
		log.Fatal("Database environment variables are not fully configured")
	}

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=" + GetEnv("DB_SSLMODE", "disable")

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{GetEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(GetEnv("KAFKA_BROKER", "localhost:9092")),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// PopularItemsKey names the all-time sorted set of item name -> units sold
// for one tenant.
func PopularItemsKey(tenantID string) string {
	return "analytics:popular:" + tenantID
}

// DailyPopularItemsKey names the per-day sorted set. Daily sets expire after
// DailyPopularItemsTTL.
func DailyPopularItemsKey(day time.Time, tenantID string) string {
	return "analytics:popular:" + day.UTC().Format("2006-01-02") + ":" + tenantID
}

const DailyPopularItemsTTL = 7 * 24 * time.Hour

// CountedOrdersKey holds how many orders have been folded into
// PopularItemsKey. Readers compare it with the order table to tell whether
// the set is complete.
func CountedOrdersKey(tenantID string) string {
	return "analytics:popular:orders:" + tenantID
}

// DailyCountedOrdersKey is the per-day counterpart of CountedOrdersKey and
// shares the daily TTL.
func DailyCountedOrdersKey(day time.Time, tenantID string) string {
	return "analytics:popular:orders:" + day.UTC().Format("2006-01-02") + ":" + tenantID
}
