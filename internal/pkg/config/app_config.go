package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppConfig is the immutable configuration of one contact-web process
type AppConfig struct {
	Port       string           `mapstructure:"port" validate:"required,numeric"`
	Debug      bool             `mapstructure:"debug"`
	SecretKey  string           `mapstructure:"secret_key" validate:"required"`
	SecretFile string           `mapstructure:"secret_file"`
	Mail       MailSettings     `mapstructure:"mail"`
	Database   DatabaseSettings `mapstructure:"database"`
	Logger     LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the top level fields and every nested settings block
func (c *AppConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for AppConfig: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if err := c.Mail.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// envBindings maps config keys to the environment variables overriding them
var envBindings = map[string]string{
	"port":                "PORT",
	"debug":               "DEBUG",
	"secret_key":          "SECRET_KEY",
	"secret_file":         "SECRET_FILE",
	"mail.transport":      "MAIL_TRANSPORT",
	"mail.server":         "MAIL_SERVER",
	"mail.port":           "MAIL_PORT",
	"mail.use_tls":        "MAIL_USE_TLS",
	"mail.username":       "MAIL_USERNAME",
	"mail.password":       "MAIL_PASSWORD",
	"mail.default_sender": "MAIL_DEFAULT_SENDER",
	"mail.timeout":        "MAIL_TIMEOUT",
	"database.type":       "DATABASE_TYPE",
	"database.dsn":        "DATABASE_DSN",
	"database.name":       "DATABASE_NAME",
	"logger.log_level":    "LOG_LEVEL",
	"logger.log_type":     "LOG_TYPE",
	"logger.file_path":    "LOG_FILE_PATH",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("debug", false)
	v.SetDefault("mail.transport", MailTransportLog)
	v.SetDefault("mail.port", GmailSMTPPort)
	v.SetDefault("mail.use_tls", true)
	v.SetDefault("mail.timeout", 10*time.Second)
	v.SetDefault("mail.default_sender", DefaultMailSender)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "local.sqlite")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
}

// InitializeAppConfig loads the configuration from the file at path (skipped when
// path is empty), the credentials file it references and the environment.
// Environment variables take precedence over the config file.
func InitializeAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s to %s: %w", env, key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.SecretFile != "" {
		if err := cfg.applySecretFile(cfg.SecretFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applySecretFile reads a flat JSON credentials file holding the session secret
// and, optionally, Gmail SMTP credentials. Values override the config file but
// never a setting given through the environment.
func (c *AppConfig) applySecretFile(path string) error {
	sv := viper.New()
	sv.SetConfigFile(path)
	sv.SetConfigType("json")
	if err := sv.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read secret file %s: %w", path, err)
	}

	secretKey := sv.GetString("flask_secret_key")
	switch {
	case setFromEnv("secret_key"):
	case secretKey == "":
		return fmt.Errorf("secret file %s is missing flask_secret_key", path)
	default:
		c.SecretKey = secretKey
	}

	username := sv.GetString("gmail_username")
	if username == "" {
		return nil
	}

	if !setFromEnv("mail.transport") {
		c.Mail.Transport = MailTransportSMTP
	}
	if !setFromEnv("mail.username") {
		c.Mail.Username = username
	}
	if !setFromEnv("mail.password") {
		c.Mail.Password = sv.GetString("gmail_app_password")
	}
	if !setFromEnv("mail.default_sender") && (c.Mail.DefaultSender == "" || c.Mail.DefaultSender == DefaultMailSender) {
		c.Mail.DefaultSender = c.Mail.Username
	}
	if c.Mail.Server == "" {
		c.Mail.Server = GmailSMTPServer
		if !setFromEnv("mail.port") {
			c.Mail.Port = GmailSMTPPort
		}
		if !setFromEnv("mail.use_tls") {
			c.Mail.UseTLS = true
		}
	}

	return nil
}

// setFromEnv reports whether the environment variable bound to key holds a value.
// Empty variables count as unset, as they do for viper.
func setFromEnv(key string) bool {
	env, ok := envBindings[key]
	if !ok {
		return false
	}
	value, ok := os.LookupEnv(env)
	return ok && value != ""
}
