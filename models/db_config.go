package models

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/Daskott/clientdir/logger"
	"github.com/Daskott/clientdir/shared"
	"github.com/Daskott/clientdir/utils"
	sqliteEncrypt "github.com/Daskott/gorm-sqlite-cipher"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	DB_NAME               = "clientdir.db"
	DEFAULT_POSTGRES_PORT = 5432
)

var logg = logger.NewLogger(false, "")

// Store is the client directory. Every operation runs in its own transaction
// which is committed before the operation returns
type Store struct {
	db      *gorm.DB
	dialect string
}

// SetLogger replaces the logger used for store & sql logs
func SetLogger(logger *zap.SugaredLogger) {
	logg = logger
}

// Open connects to the database described by config & verifies the connection
func Open(config shared.Config) (*Store, error) {
	dialector, err := dialector(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.New(
			zap.NewStdLog(logg.Desugar()),
			gormLogger.Config{
				LogLevel:                  sqlLogLevel(config.Log.SqlLevel),
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, translateError(errors.Wrap(err, "failed to connect database"))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if config.Database.Driver == shared.SQLITE_DRIVER {
		// sqlite allows one writer at a time
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, translateError(errors.Wrap(err, "failed to ping database"))
	}

	logg.Debugf("connected to %v database", config.Database.Driver)

	return &Store{db: db, dialect: config.Database.Driver}, nil
}

// Close releases the underlying database connection(s)
func (store *Store) Close() error {
	sqlDB, err := store.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// InitializeTestStore opens an encrypted sqlite store in dir with a freshly reset schema
func InitializeTestStore(dir string) (*Store, error) {
	store, err := Open(shared.Config{
		Database: shared.DatabaseConfig{Driver: shared.SQLITE_DRIVER},
		Sqlite:   shared.SqliteConfig{PassPhrase: "test-passphrase", Dir: dir},
	})
	if err != nil {
		return nil, err
	}

	err = store.ResetSchema(context.Background())
	if err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func dialector(config shared.Config) (gorm.Dialector, error) {
	switch config.Database.Driver {
	case shared.POSTGRES_DRIVER:
		return postgres.Open(postgresDSN(config.Database)), nil
	case shared.SQLITE_DRIVER:
		dsn, err := sqliteDSN(config.Sqlite)
		if err != nil {
			return nil, errors.Wrap(err, "failed to set sqlite DSN")
		}
		return sqliteEncrypt.Open(dsn), nil
	}

	return nil, fmt.Errorf("unsupported database driver '%v'", config.Database.Driver)
}

func postgresDSN(config shared.DatabaseConfig) string {
	port := config.Port
	if port == 0 {
		port = DEFAULT_POSTGRES_PORT
	}

	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.User, config.Password),
		Host:     config.Host + ":" + strconv.Itoa(port),
		Path:     "/" + config.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return dsn.String()
}

func sqliteDSN(config shared.SqliteConfig) (string, error) {
	dbDir, err := DbDirectory(config.Dir)
	if err != nil {
		return "", err
	}

	dbFilePath := filepath.Join(dbDir, DB_NAME)
	// _foreign_keys is applied by the driver to every new connection
	dsn := fmt.Sprintf("file:%v?_journal_mode=WAL&_foreign_keys=1", dbFilePath)
	if config.PassPhrase != "" {
		dsn = fmt.Sprintf("%v&_pragma_key=%s&_pragma_cipher_page_size=4096", dsn, url.QueryEscape(config.PassPhrase))
	}

	return dsn, nil
}

// DbDirectory returns the 'db' folder under dbRootDir, creating it if needed
func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.CreateDirIfNotExist(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}

func sqlLogLevel(level string) gormLogger.LogLevel {
	switch level {
	case "error":
		return gormLogger.Error
	case "warn":
		return gormLogger.Warn
	case "info":
		return gormLogger.Info
	}

	return gormLogger.Silent
}
