package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; building a validator is expensive.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notplaceholder", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != PlaceholderBotToken && s != PlaceholderLaunchURL
	})
	return v
}

// ValidateLauncher checks the launcher section.
func ValidateLauncher(l Launcher) error {
	if err := validate.Struct(l); err != nil {
		return describe("launcher", err)
	}
	if l.Mode == ModeWebhook {
		if l.Webhook.PublicURL == "" {
			return fmt.Errorf("%w: launcher.webhook.public_url is required in webhook mode", ErrInvalid)
		}
		if l.Webhook.ListenAddr == "" {
			return fmt.Errorf("%w: launcher.webhook.listen_addr is required in webhook mode", ErrInvalid)
		}
	}
	return nil
}

// ValidateHost checks the host and logging sections.
func ValidateHost(cfg Config) error {
	if err := validate.Struct(cfg.Host); err != nil {
		return describe("host", err)
	}
	if err := validate.Struct(cfg.Logging); err != nil {
		return describe("logging", err)
	}
	return nil
}

// describe turns validator output into one line per field.
func describe(section string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, section, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(section, fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func fieldMessage(section string, fe validator.FieldError) string {
	field := section + "." + fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notplaceholder":
		return field + " is still set to its placeholder value"
	case "startswith":
		return field + " must start with " + fe.Param()
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
