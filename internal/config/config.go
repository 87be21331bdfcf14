package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	// Mode "RO" turns the instance read-only.
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Flights configures the live flight search client.
type Flights struct {
	APIKey       string
	BaseURL      string
	Version      string
	Market       string
	Locale       string
	Currency     string
	CabinClass   string
	MaxPolls     int
	PollInterval time.Duration
	TokenSuffix  string
	Timeout      time.Duration
}

type Recommendation struct {
	HomeOrigin     string
	DateOffsetDays int
	Adults         int
	TopN           int
	LockTTL        time.Duration
}

type Rooms struct {
	CodeLength  int
	JoinBaseURL string
}

type Catalog struct {
	AdminToken string
}

type Config struct {
	HTTP           HTTPServer
	Redis          RedisCache
	Postgres       Postgres
	Flights        Flights
	Recommendation Recommendation
	Rooms          Rooms
	Catalog        Catalog
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv()
}

// FromEnv builds the config from the current environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:           *newHTTP(),
		Redis:          *newRedis(),
		Postgres:       *newPostgres(),
		Flights:        *newFlights(),
		Recommendation: *newRecommendation(),
		Rooms:          *newRooms(),
		Catalog:        *newCatalog(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
		Mode: getenv("HTTP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getsecret("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getsecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "wenomadus"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newFlights() *Flights {
	return &Flights{
		APIKey:       getsecret("FLIGHTS_API_KEY", ""),
		BaseURL:      getenv("FLIGHTS_BASE_URL", "https://partners.api.skyscanner.net/apiservices"),
		Version:      getenv("FLIGHTS_API_VERSION", "v3"),
		Market:       getenv("FLIGHTS_MARKET", "ES"),
		Locale:       getenv("FLIGHTS_LOCALE", "es-ES"),
		Currency:     getenv("FLIGHTS_CURRENCY", "EUR"),
		CabinClass:   getenv("FLIGHTS_CABIN_CLASS", "CABIN_CLASS_ECONOMY"),
		MaxPolls:     getint("FLIGHTS_MAX_POLLS", 3),
		PollInterval: getduration("FLIGHTS_POLL_INTERVAL", 2*time.Second),
		TokenSuffix:  getenv("FLIGHTS_TOKEN_SUFFIX", "-cells1"),
		Timeout:      getduration("FLIGHTS_HTTP_TIMEOUT", 30*time.Second),
	}
}

func newRecommendation() *Recommendation {
	return &Recommendation{
		HomeOrigin:     strings.ToUpper(getenv("HOME_ORIGIN", "MAD")),
		DateOffsetDays: getint("SEARCH_DATE_OFFSET_DAYS", 30),
		Adults:         getint("SEARCH_ADULTS", 1),
		TopN:           getint("RECOMMENDATION_TOP_N", 5),
		LockTTL:        getduration("RECOMMENDATION_LOCK_TTL", 2*time.Minute),
	}
}

func newRooms() *Rooms {
	return &Rooms{
		CodeLength:  getint("ROOM_CODE_LENGTH", 6),
		JoinBaseURL: getenv("ROOM_JOIN_BASE_URL", "http://localhost:8080/join/"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		AdminToken: getsecret("CATALOG_ADMIN_TOKEN", ""),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

// getsecret behaves like getenv but never prints the value.
func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s = ****\n", logtag, key)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an integer (%q). Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s is not a duration (%q). Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}
