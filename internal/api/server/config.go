package server

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/article-feed/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Port        string `validate:"required,numeric"`
	UseHttp2    bool
	CorsOrigins []string `validate:"min=1,dive,required"`
	// BaseURL overrides scheme and host of generated links, e.g. behind a reverse proxy
	BaseURL string `validate:"omitempty,url"`
}

// LoadConfig reads the server settings from the environment.
// Call env.LoadDotEnv beforehand to pick up a .env file.
func LoadConfig() (*Config, error) {
	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := utils.RemoveEmptyStrings(utils.SplitAndTrim(os.Getenv("CORS_ORIGINS"), ","))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cfg := &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		BaseURL:     os.Getenv("BASE_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if c.BaseURL != "" {
		if _, err := url.Parse(c.BaseURL); err != nil {
			return fmt.Errorf("invalid base url: %w", err)
		}
	}
	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
