package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("file", isFileReadable); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}
	if err := validate.RegisterTranslation("file", trans, func(ut ut.Translator) error {
		return ut.Add("file", "{0} must be an existing and readable file", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("file", fieldPath(fe))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register file translation: %w", err)
	}

	if err := validate.RegisterValidation("timezone", isTimezone); err != nil {
		return nil, nil, fmt.Errorf("failed to register timezone validation: %w", err)
	}
	if err := validate.RegisterTranslation("timezone", trans, func(ut ut.Translator) error {
		return ut.Add("timezone", "{0} must be Local, an IANA time zone, or a UTC offset like UTC+3", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("timezone", fieldPath(fe))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register timezone translation: %w", err)
	}

	if err := validate.RegisterTranslation("required_for_driver", trans, func(ut ut.Translator) error {
		return ut.Add("required_for_driver", "{0} is required when storage.driver is {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required_for_driver", fieldPath(fe), fe.Param())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register required_for_driver translation: %w", err)
	}

	validate.RegisterStructValidation(validateStorage, StorageConfig{})

	return validate, trans, nil
}

// fieldPath turns "Config.storage.mysql.host" into "storage.mysql.host".
func fieldPath(fe validator.FieldError) string {
	return strings.TrimPrefix(fe.Namespace(), "Config.")
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}

func isTimezone(fl validator.FieldLevel) bool {
	_, err := ParseLocation(fl.Field().String())
	return err == nil
}

// validateStorage requires the connection settings of the selected SQL driver.
func validateStorage(sl validator.StructLevel) {
	storage := sl.Current().Interface().(StorageConfig)
	switch storage.Driver {
	case DriverMySQL:
		if storage.MySQL.Host == "" {
			sl.ReportError(storage.MySQL.Host, "mysql.host", "Host", "required_for_driver", DriverMySQL)
		}
		if storage.MySQL.Database == "" {
			sl.ReportError(storage.MySQL.Database, "mysql.database", "Database", "required_for_driver", DriverMySQL)
		}
	case DriverPostgres:
		if storage.Postgres.DSN == "" {
			sl.ReportError(storage.Postgres.DSN, "postgres.dsn", "DSN", "required_for_driver", DriverPostgres)
		}
	}
}
