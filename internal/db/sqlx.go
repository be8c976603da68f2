package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sqlx.DB

// sqlxDriverNames maps config driver names onto database/sql driver names.
var sqlxDriverNames = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// InitSQLX opens the sqlx handle used for reporting queries, retrying while
// the database comes up.
func InitSQLX(driver, dsn string) (*sqlx.DB, error) {
	name, ok := sqlxDriverNames[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect(name, dsn)
		if err == nil {
			return DB, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, err
}
