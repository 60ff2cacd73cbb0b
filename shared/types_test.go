package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		description string
		config      Config
		valid       bool
	}{
		{
			description: "Should accept sqlite config without connection details",
			config:      Config{Database: DatabaseConfig{Driver: SQLITE_DRIVER}},
			valid:       true,
		},
		{
			description: "Should accept complete postgres config",
			config: Config{Database: DatabaseConfig{
				Driver: POSTGRES_DRIVER, Host: "localhost", Port: 5432, User: "postgres", Name: "clients",
			}},
			valid: true,
		},
		{
			description: "Should reject postgres config without host",
			config:      Config{Database: DatabaseConfig{Driver: POSTGRES_DRIVER, User: "postgres", Name: "clients"}},
			valid:       false,
		},
		{
			description: "Should reject unknown driver",
			config:      Config{Database: DatabaseConfig{Driver: "mysql"}},
			valid:       false,
		},
		{
			description: "Should reject unknown sql log level",
			config: Config{
				Database: DatabaseConfig{Driver: SQLITE_DRIVER},
				Log:      LogConfig{SqlLevel: "verbose"},
			},
			valid: false,
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			err := c.config.Validate()
			if c.valid {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}
