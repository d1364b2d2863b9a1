package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env            string
	Port           string
	SessionSecret  string
	DatabaseURL    string
	RedisURL       string
	CookieDomain   string
	FrontendSuffix string // allowed CORS origin suffix, e.g. ".confera.app"
	HealthAdminKey string
	InviteBaseURL  string // base URL for invitation links, e.g. https://confera.app

	// Mail: Brevo API when BREVO_API_KEY is set, SMTP when SMTP_HOST is set.
	BrevoAPIKey  string
	MailFrom     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	smtpPort := viper.GetInt("SMTP_PORT")
	if smtpPort == 0 {
		smtpPort = 587
	}

	return &Config{
		Env:            env,
		Port:           port,
		SessionSecret:  viper.GetString("SESSION_SECRET"),
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		RedisURL:       viper.GetString("REDIS_URL"),
		CookieDomain:   viper.GetString("COOKIE_DOMAIN"),
		FrontendSuffix: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		HealthAdminKey: viper.GetString("HEALTH_ADMIN_KEY"),
		InviteBaseURL:  inviteBaseURL(viper.GetString("INVITE_BASE_URL")),
		BrevoAPIKey:    viper.GetString("BREVO_API_KEY"),
		MailFrom:       viper.GetString("MAIL_FROM"),
		SMTPHost:       viper.GetString("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUsername:   viper.GetString("SMTP_USERNAME"),
		SMTPPassword:   viper.GetString("SMTP_PASSWORD"),
	}, nil
}

func inviteBaseURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "https://confera.app"
	}
	return strings.TrimRight(s, "/")
}
