package models

import (
	"context"

	"github.com/Daskott/clientdir/shared"
	"gorm.io/gorm"
)

// Phones are dropped before users, since they reference users
var dropStatements = []string{
	"DROP TABLE IF EXISTS phones",
	"DROP TABLE IF EXISTS users",
}

var createStatements = map[string][]string{
	shared.POSTGRES_DRIVER: {
		`CREATE TABLE IF NOT EXISTS users(
			user_id SERIAL PRIMARY KEY,
			first_name VARCHAR(40) NOT NULL,
			last_name VARCHAR(60) NOT NULL,
			email VARCHAR(80) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS phones(
			phone_id SERIAL PRIMARY KEY,
			phone VARCHAR(12) UNIQUE NOT NULL,
			user_id INTEGER NOT NULL REFERENCES users(user_id)
		)`,
	},

	// sqlite has no SERIAL, an INTEGER PRIMARY KEY is its auto-generated row id
	shared.SQLITE_DRIVER: {
		`CREATE TABLE IF NOT EXISTS users(
			user_id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name VARCHAR(40) NOT NULL,
			last_name VARCHAR(60) NOT NULL,
			email VARCHAR(80) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS phones(
			phone_id INTEGER PRIMARY KEY AUTOINCREMENT,
			phone VARCHAR(12) UNIQUE NOT NULL,
			user_id INTEGER NOT NULL REFERENCES users(user_id)
		)`,
	},
}

// ResetSchema drops the users & phones tables if they exist and creates them again.
// All existing records are lost
func (store *Store) ResetSchema(ctx context.Context) error {
	statements := append(append([]string{}, dropStatements...), createStatements[store.dialect]...)

	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}

	logg.Debug("client directory schema has been reset")
	return nil
}
