package core

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/mail"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		AppName  string
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string

		DefaultFromEmail mail.Address
		SendgridApiKey   string
		RollbarToken     string

		Server   ServerConfig
		Database DatabaseConfig
		Identity IdentityConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		User     string
		Password string
		Host     string // cluster address
		Name     string
	}

	// IdentityConfig holds the identity provider's service credentials,
	// provided as a base64-encoded JSON blob.
	IdentityConfig struct {
		Credentials string
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "EduCircle")
	conf.SetDefault("build", "dev")
	conf.SetDefault("defaultFromEmail", "noreply@educircle.app")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":5000")
	conf.SetDefault("serverDebugAddr", ":5001")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("dbName", "eduCircle")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (no project root means no .env either; run on
	// environment variables alone)
	if root := Getwd(); root != "" {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		AppName:          conf.GetString("appName"),
		Env:              env,
		Build:            conf.GetString("build"),
		DefaultFromEmail: mail.Address{Address: conf.GetString("defaultFromEmail")},
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Addr:            conf.GetString("serverAddr"),
			DebugAddr:       conf.GetString("serverDebugAddr"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Database: DatabaseConfig{
			User:     conf.GetString("dbUser"),
			Password: conf.GetString("dbPassword"),
			Host:     conf.GetString("dbHost"),
			Name:     conf.GetString("dbName"),
		},
		Identity: IdentityConfig{
			Credentials: conf.GetString("identityCredentials"),
		},
	}
}

// URI builds the connection string for the managed cluster.
func (c DatabaseConfig) URI() string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// ClientID decodes the service credentials blob and returns the client ID
// that verified tokens must be issued for.
func (c IdentityConfig) ClientID() (string, error) {
	raw, err := base64.StdEncoding.DecodeString(c.Credentials)
	if err != nil {
		return "", errors.Wrap(err, "decoding identity credentials")
	}
	var creds struct {
		ClientID  string `json:"client_id"`
		ProjectID string `json:"project_id"`
	}
	if err = json.Unmarshal(raw, &creds); err != nil {
		return "", errors.Wrap(err, "parsing identity credentials")
	}
	if creds.ClientID == "" {
		return "", errors.New("identity credentials: missing client_id")
	}
	return creds.ClientID, nil
}
