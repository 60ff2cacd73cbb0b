package shared

import (
	"github.com/go-playground/validator"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(databaseConfigStructLevel, DatabaseConfig{})
}

// Validate checks that the config has everything needed to open the configured database
func (config *Config) Validate() error {
	return validate.Struct(config)
}

// A postgres connection needs a host, user & database name.
// The sqlite backend only needs a directory, which defaults to the working dir
func databaseConfigStructLevel(sl validator.StructLevel) {
	dbConfig := sl.Current().Interface().(DatabaseConfig)
	if dbConfig.Driver != POSTGRES_DRIVER {
		return
	}

	if dbConfig.Host == "" {
		sl.ReportError(dbConfig.Host, "host", "Host", "required_with_postgres", "")
	}

	if dbConfig.User == "" {
		sl.ReportError(dbConfig.User, "user", "User", "required_with_postgres", "")
	}

	if dbConfig.Name == "" {
		sl.ReportError(dbConfig.Name, "name", "Name", "required_with_postgres", "")
	}
}
