package shared

const (
	POSTGRES_DRIVER = "postgres"
	SQLITE_DRIVER   = "sqlite"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Sqlite   SqliteConfig   `mapstructure:"sqlite"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslMode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

type SqliteConfig struct {
	PassPhrase string `mapstructure:"passPhrase"`
	Dir        string `mapstructure:"dir"`
}

type LogConfig struct {
	Level    string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	SqlLevel string `mapstructure:"sqlLevel" validate:"omitempty,oneof=silent error warn info"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}
