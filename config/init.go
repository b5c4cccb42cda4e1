package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/customeros/trustwatch/internal/logger"
	"github.com/customeros/trustwatch/internal/tracing"
)

type Config struct {
	AppConfig          *AppConfig
	Logger             *logger.Config
	Tracing            *tracing.JaegerConfig
	WhoisConfig        *WhoisConfig
	SafeBrowsingConfig *SafeBrowsingConfig
	EmailRepConfig     *EmailRepConfig
	HttpsProbeConfig   *HttpsProbeConfig
	DnsConfig          *DnsConfig
	CrmConfig          *CrmConfig
}

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:          &AppConfig{},
		Logger:             &logger.Config{},
		Tracing:            &tracing.JaegerConfig{},
		WhoisConfig:        &WhoisConfig{},
		SafeBrowsingConfig: &SafeBrowsingConfig{},
		EmailRepConfig:     &EmailRepConfig{},
		HttpsProbeConfig:   &HttpsProbeConfig{},
		DnsConfig:          &DnsConfig{},
		CrmConfig:          &CrmConfig{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading trustwatch config: %v", err)
	}

	return config, nil
}
