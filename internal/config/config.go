package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Firestore  FirestoreConfig
	Mail       MailConfig
	Invitation InvitationConfig
	Bcrypt     BcryptConfig
}

type ServerConfig struct {
	Port string
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type MailConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
	StartTLS bool
	SSL      bool
}

type InvitationConfig struct {
	Recipients     []string
	AttachmentPath string
	DocsURL        string
}

type BcryptConfig struct {
	Cost int // 0 means the bcrypt library default
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_STARTTLS", true)
	viper.SetDefault("MAIL_SSL_TLS", false)

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
		Mail: MailConfig{
			Server:   getEnvOrDefault("MAIL_SERVER", "smtp.gmail.com"),
			Port:     viper.GetInt("MAIL_PORT"),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			StartTLS: viper.GetBool("MAIL_STARTTLS"),
			SSL:      viper.GetBool("MAIL_SSL_TLS"),
		},
		Invitation: InvitationConfig{
			Recipients:     splitRecipients(os.Getenv("EMAIL_RECIPIENTS")),
			AttachmentPath: getEnvOrDefault("INVITATION_ATTACHMENT", "firestore_screenshot.png"),
			DocsURL:        getEnvOrDefault("INVITATION_DOCS_URL", "http://127.0.0.1:8080/redoc"),
		},
		Bcrypt: BcryptConfig{
			Cost: viper.GetInt("BCRYPT_COST"),
		},
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitRecipients parses a comma-separated address list, dropping empty
// entries and surrounding whitespace.
func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			recipients = append(recipients, s)
		}
	}
	return recipients
}
