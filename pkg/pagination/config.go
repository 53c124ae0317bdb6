package pagination

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the tunable page sizes. MaxSize of zero disables the cap.
type Config struct {
	DefaultSize int `validate:"min=1"`
	MaxSize     int `validate:"omitempty,gtefield=DefaultSize"`
}

func DefaultConfig() Config {
	return Config{
		DefaultSize: PageDefaultSize,
		MaxSize:     PageMaxSize,
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid pagination config: %w", err)
	}
	return nil
}

// Calculator builds a Calculator configured with c
func (c Config) Calculator() *Calculator {
	return NewCalculator(WithDefaultSize(c.DefaultSize), WithMaxSize(c.MaxSize))
}
