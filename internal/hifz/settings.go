package hifz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Settings are the user's daily targets.
type Settings struct {
	DailyMemorizeTarget  int  `json:"dailyMemorizeTarget" yaml:"daily_memorize_target"`
	DailyReviseTarget    int  `json:"dailyReviseTarget" yaml:"daily_revise_target"`
	NotificationsEnabled bool `json:"notificationsEnabled" yaml:"notifications_enabled"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		DailyMemorizeTarget:  1,
		DailyReviseTarget:    5,
		NotificationsEnabled: false,
	}
}

// SettingsUpdate is a partial settings change. Nil fields are left unchanged.
type SettingsUpdate struct {
	DailyMemorizeTarget  *int `validate:"omitempty,min=1"`
	DailyReviseTarget    *int `validate:"omitempty,min=1"`
	NotificationsEnabled *bool
}

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects non-positive targets.
func (u SettingsUpdate) Validate() error {
	if err := settingsValidator.Struct(u); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("settingsValidator.Struct() > %w", err)
		}
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(fields, ", "))
	}
	return nil
}

// apply returns s with the update merged in.
func (u SettingsUpdate) apply(s Settings) Settings {
	if u.DailyMemorizeTarget != nil {
		s.DailyMemorizeTarget = *u.DailyMemorizeTarget
	}
	if u.DailyReviseTarget != nil {
		s.DailyReviseTarget = *u.DailyReviseTarget
	}
	if u.NotificationsEnabled != nil {
		s.NotificationsEnabled = *u.NotificationsEnabled
	}
	return s
}
