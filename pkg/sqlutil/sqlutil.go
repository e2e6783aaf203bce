// Package sqlutil provides a thin database access layer over database/sql.
// PostgreSQL (driver name "pgx") and MySQL (driver name "mysql") drivers
// are registered by importing this package.
package sqlutil

import (
	"context"
	"database/sql"
	"time"

	// Register database drivers
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"go.uber.org/zap"

	"github.com/dperussina/code-library/pkg/errors"
	"github.com/dperussina/code-library/pkg/logger"
	"github.com/dperussina/code-library/pkg/metrics"
)

// DB wraps a sql.DB handle with logging and typed errors.
type DB struct {
	db     *sql.DB
	driver string
	logger *zap.Logger
}

// Open connects to a database and verifies the connection with a ping.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeValidation,
			"failed to open %s database", driver)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, errors.ErrorTypeConnection,
			"failed to connect to %s database", driver)
	}

	logger.Info("database connected", zap.String("driver", driver))

	return &DB{
		db:     db,
		driver: driver,
		logger: logger.Get().With(zap.String("component", "sqlutil"), zap.String("driver", driver)),
	}, nil
}

// Query runs a SELECT and returns one map per row, keyed by column name.
// Byte slices are converted to strings.
func (d *DB) Query(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {
	timer := metrics.NewTimer("sqlutil", "query")

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		timer.Stop(err)
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "query failed")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		timer.Stop(err)
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "failed to read columns")
	}

	var results []map[string]interface{}
	values := make([]interface{}, len(columns))
	scanArgs := make([]interface{}, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			timer.Stop(err)
			return nil, errors.Wrap(err, errors.ErrorTypeQuery, "failed to scan row")
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		timer.Stop(err)
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "row iteration failed")
	}

	timer.Stop(nil)
	d.logger.Debug("query finished", zap.Int("rows", len(results)))

	return results, nil
}

// Exec runs a statement that returns no rows (INSERT, UPDATE, DELETE,
// DDL) and reports the number of rows affected.
func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	timer := metrics.NewTimer("sqlutil", "exec")

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		timer.Stop(err)
		return 0, errors.Wrap(err, errors.ErrorTypeQuery, "exec failed")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		// Some drivers cannot report affected rows
		affected = 0
	}

	timer.Stop(nil)
	return affected, nil
}

// Close releases the connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}
