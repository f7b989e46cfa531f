package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory sqlite database migrated with the ledger tables.
type Db struct {
	DbConn *gorm.DB
	tables []string
	models map[string]any
}

// NewDb opens the database once per test binary. Models are migrated in the
// order given, so parents must come before the tables referencing them.
func NewDb(name string, models ...any) *Db {
	once.Do(func() {
		db = open(name, models)
	})

	return db
}

func open(name string, models []any) *Db {
	dbConn, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbConn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic(err)
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	newDbMock := &Db{
		DbConn: dbConn,
		tables: make([]string, 0, len(models)),
		models: make(map[string]any, len(models)),
	}
	for _, model := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(err)
		}
		newDbMock.tables = append(newDbMock.tables, stmt.Schema.Table)
		newDbMock.models[stmt.Schema.Table] = model
	}

	return newDbMock
}

// ClearDB empties every table, children first.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		if err := d.DbConn.Exec("DELETE FROM " + d.tables[i]).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", d.tables[i], err)
		}
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
