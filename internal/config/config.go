package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/IgorBayerl/linereader/internal/logging"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Configuration holds everything the CLI needs for one run.
type Configuration struct {
	Files       []string `validate:"required,min=1,dive,required"`
	Format      string   `validate:"required,oneof=text json html"`
	OutputFile  string
	LogFormat   string `validate:"required,oneof=console json"`
	Verbosity   logging.VerbosityLevel
	MaxLineSize int `validate:"gte=0"`
	CountOnly   bool
	NumberLines bool
}

// NewConfiguration is a constructor for Configuration.
// Empty format and log format fall back to "text" and "console".
func NewConfiguration(
	files []string,
	format string,
	outputFile string,
	logFormat string,
	verbosity logging.VerbosityLevel,
	maxLineSize int,
	countOnly bool,
	numberLines bool,
) *Configuration {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "text"
	}
	logFormat = strings.ToLower(strings.TrimSpace(logFormat))
	if logFormat == "" {
		logFormat = "console"
	}
	return &Configuration{
		Files:       files,
		Format:      format,
		OutputFile:  strings.TrimSpace(outputFile),
		LogFormat:   logFormat,
		Verbosity:   verbosity,
		MaxLineSize: maxLineSize,
		CountOnly:   countOnly,
		NumberLines: numberLines,
	}
}

var (
	vOnce      sync.Once
	validate   *validator.Validate
	translator ut.Translator
	vInitErr   error
)

func initValidator() error {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, found := uni.GetTranslator("en")
		if !found {
			vInitErr = errors.New("english translator not found")
			return
		}

		v := validator.New(validator.WithRequiredStructEnabled())
		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			vInitErr = fmt.Errorf("registering english translations: %w", err)
			return
		}

		validate = v
		translator = trans
	})
	return vInitErr
}

// Validate checks the configuration and returns one error listing every
// violated rule in English.
func (c *Configuration) Validate() error {
	if err := initValidator(); err != nil {
		return fmt.Errorf("initializing validator: %w", err)
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
