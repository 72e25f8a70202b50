package main

import "github.com/spf13/viper"

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`

	RateLimitRPS     float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int      `mapstructure:"RATE_LIMIT_BURST"`
	RateLimitEnabled bool     `mapstructure:"RATE_LIMIT_ENABLED"`
	TrustedOrigins   []string `mapstructure:"CORS_TRUSTED_ORIGINS"`

	DB struct {
		Host     string `mapstructure:"POSTGRES_HOST"`
		Port     string `mapstructure:"POSTGRES_PORT"`
		User     string `mapstructure:"POSTGRES_USER"`
		Password string `mapstructure:"POSTGRES_PASSWORD"`
		Name     string `mapstructure:"POSTGRES_DB"`
	} `mapstructure:",squash"`

	JWT struct {
		Secret            string `mapstructure:"JWT_SECRET"`
		Issuer            string `mapstructure:"JWT_ISSUER"`
		Audience          string `mapstructure:"JWT_AUDIENCE"`
		AccessTTLMinutes  int    `mapstructure:"JWT_ACCESS_TTL_MINUTES"`
		RefreshTTLMinutes int    `mapstructure:"JWT_REFRESH_TTL_MINUTES"`
	} `mapstructure:",squash"`

	S3 struct {
		Region   string `mapstructure:"S3_REGION"`
		Bucket   string `mapstructure:"S3_BUCKET"`
		Endpoint string `mapstructure:"S3_ENDPOINT"`
	} `mapstructure:",squash"`

	Mail struct {
		Host     string `mapstructure:"MAIL_HOST"`
		Port     int    `mapstructure:"MAIL_PORT"`
		User     string `mapstructure:"MAIL_USER"`
		Password string `mapstructure:"MAIL_PASSWORD"`
		Sender   string `mapstructure:"MAIL_SENDER"`
	} `mapstructure:",squash"`

	RabbitMQ struct {
		Host     string `mapstructure:"RABBITMQ_HOST"`
		Port     string `mapstructure:"RABBITMQ_PORT"`
		User     string `mapstructure:"RABBITMQ_USER"`
		Password string `mapstructure:"RABBITMQ_PASSWORD"`
	} `mapstructure:",squash"`
}

func loadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
