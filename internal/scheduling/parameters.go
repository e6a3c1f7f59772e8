package scheduling

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// LeechAction decides what happens to a card once it becomes a leech.
type LeechAction string

const (
	LeechActionTag     LeechAction = "tag"
	LeechActionSuspend LeechAction = "suspend"
)

// Parameters are the per-deck tunables. They are read-only while a card is
// being scheduled and are always passed in explicitly.
type Parameters struct {
	LearningSteps   []time.Duration `json:"learning_steps" validate:"min=1,dive,gt=0"`
	RelearningSteps []time.Duration `json:"relearning_steps" validate:"dive,gt=0"`

	GraduatingIntervalDays int `json:"graduating_interval_days" validate:"gte=1"`
	EasyIntervalDays       int `json:"easy_interval_days" validate:"gtefield=GraduatingIntervalDays"`
	MaxIntervalDays        int `json:"max_interval_days" validate:"gte=1"`

	StartingEase Factor `json:"starting_ease" validate:"gtefield=MinimumEase"`
	MinimumEase  Factor `json:"minimum_ease" validate:"gt=0"`

	LapseEasePenalty        Factor `json:"lapse_ease_penalty" validate:"gte=0"`
	LapseIntervalMultiplier Factor `json:"lapse_interval_multiplier" validate:"gt=0,lte=1000"`
	HardIntervalMultiplier  Factor `json:"hard_interval_multiplier" validate:"gte=1000"`
	HardEasePenalty         Factor `json:"hard_ease_penalty" validate:"gte=0"`
	EasyBonus               Factor `json:"easy_bonus" validate:"gte=1000"`
	EasyEaseBonus           Factor `json:"easy_ease_bonus" validate:"gte=0"`

	LeechThreshold int         `json:"leech_threshold" validate:"gte=1"`
	LeechAction    LeechAction `json:"leech_action" validate:"oneof=tag suspend"`

	Fuzz                bool   `json:"fuzz"`
	FuzzFactor          Factor `json:"fuzz_factor" validate:"gte=0,lte=50"`
	FuzzMinIntervalDays int    `json:"fuzz_min_interval_days" validate:"gte=1"`

	NewPerDay    int `json:"new_per_day" validate:"gte=0"`
	ReviewPerDay int `json:"review_per_day" validate:"gte=0"`
}

// DefaultParameters returns the stock SM-2 settings.
func DefaultParameters() Parameters {
	return Parameters{
		LearningSteps:           []time.Duration{time.Minute, 10 * time.Minute},
		RelearningSteps:         []time.Duration{10 * time.Minute},
		GraduatingIntervalDays:  1,
		EasyIntervalDays:        4,
		MaxIntervalDays:         36500,
		StartingEase:            2500,
		MinimumEase:             1300,
		LapseEasePenalty:        200,
		LapseIntervalMultiplier: 500,
		HardIntervalMultiplier:  1200,
		HardEasePenalty:         150,
		EasyBonus:               1300,
		EasyEaseBonus:           150,
		LeechThreshold:          8,
		LeechAction:             LeechActionTag,
		Fuzz:                    true,
		FuzzFactor:              50,
		FuzzMinIntervalDays:     3,
		NewPerDay:               20,
		ReviewPerDay:            200,
	}
}

// Limits returns the daily caps configured for the deck.
func (p Parameters) Limits() Limits {
	return Limits{NewPerDay: p.NewPerDay, ReviewPerDay: p.ReviewPerDay}
}

// steps returns the step sequence used by q.
func (p Parameters) steps(q Queue) []time.Duration {
	if q == QueueRelearning {
		return p.RelearningSteps
	}
	return p.LearningSteps
}

func (p Parameters) clampInterval(days int) int {
	return max(1, min(days, p.MaxIntervalDays))
}

var (
	paramsValidatorOnce sync.Once
	paramsValidate      *validator.Validate
	paramsTranslator    ut.Translator
	paramsValidatorErr  error
)

func newParametersValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate, trans, nil
}

// Validate checks p against the parameter invariants. Violations are
// reported as an *InvalidParametersError naming deck; nothing is clamped.
func (p Parameters) Validate(deck string) error {
	paramsValidatorOnce.Do(func() {
		paramsValidate, paramsTranslator, paramsValidatorErr = newParametersValidator()
	})
	if paramsValidatorErr != nil {
		return paramsValidatorErr
	}

	err := paramsValidate.Struct(p)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate parameters: %w", err)
	}
	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, e.Translate(paramsTranslator))
	}
	return &InvalidParametersError{Deck: deck, Problems: problems}
}
