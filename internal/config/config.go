package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Juanpisto22/sistema-biomedico-husi/internal/utils"
)

const AppName = "rondas-service"

type Config struct {
	AppName      string
	Env          string
	AppPort      string
	AppUrl       string
	DBUrl        string
	RSAPublicKey *rsa.PublicKey
	Location     *time.Location
	SeedCatalog  bool
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL_FROM_ANYWHERE")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL_FROM_ANYWHERE env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	pubB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if pubB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	// Rounds run on hospital wall-clock time.
	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "America/Bogota"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("Unknown TIMEZONE %q", tz)
	}

	return &Config{
		AppName:      AppName,
		Env:          env,
		AppPort:      appPort,
		AppUrl:       appUrl,
		DBUrl:        dbURL,
		RSAPublicKey: pubKey,
		Location:     loc,
		SeedCatalog:  os.Getenv("SEED_CATALOG") == "true",
	}
}

func (c *Config) Close() {}
