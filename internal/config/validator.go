package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/pointer"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("palette_slot", func(fl validator.FieldLevel) bool {
			_, ok := pointer.ParseSlot(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
			_, port, err := net.SplitHostPort(fl.Field().String())
			if err != nil {
				return false
			}
			n, err := strconv.Atoi(port)
			return err == nil && n >= 0 && n <= 65535
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks every section of cfg. All problems are reported as
// details on a single INVALID_CONFIG error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "configuration is nil")
	}

	var details []string
	if err := validatorInstance().Struct(cfg); err != nil {
		ves, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate config")
		}
		for _, fe := range ves {
			details = append(details, describe(fe))
		}
	}

	b := cfg.Render.Badge
	if b.FontSize <= 0 {
		details = append(details, "render.badge.font_size must be positive")
	}
	if b.HorizontalPadding < 0 || b.VerticalPadding < 0 || b.Spacing < 0 {
		details = append(details, "render.badge paddings and spacing must not be negative")
	}
	for name, d := range map[string]Duration{
		"server.read_timeout":     cfg.Server.ReadTimeout,
		"server.write_timeout":    cfg.Server.WriteTimeout,
		"server.shutdown_timeout": cfg.Server.ShutdownTimeout,
		"cache.ttl":               cfg.Cache.TTL,
	} {
		if d.Duration < 0 {
			details = append(details, name+" must not be negative")
		}
	}

	if len(details) == 0 {
		return nil
	}
	return errors.WithDetails(errors.ErrCodeInvalidConfig, details, "invalid configuration")
}

// describe renders a field error using the TOML key path, e.g.
// "layout.node_size failed 'gt=0' (got -1)".
func describe(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	tag := fe.Tag()
	if fe.Param() != "" {
		tag += "=" + fe.Param()
	}
	return fmt.Sprintf("%s failed '%s' (got %v)", strings.Join(parts, "."), tag, fe.Value())
}

// snake converts a Go field name to its TOML key. Map keys in brackets are
// kept as written.
func snake(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return snake(s[:i]) + s[i:]
	}
	if override, ok := tomlNames[s]; ok {
		return override
	}
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tomlNames lists fields whose TOML key is not the snake-cased field name.
var tomlNames = map[string]string{
	"TTL":       "ttl",
	"RedisDB":   "redis_db",
	"MongoURI":  "mongo_uri",
	"MongoDB":   "mongo_db",
	"MongoColl": "mongo_collection",
}
