package repo

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Conn struct {
	conn   *sql.DB
	path   string
	logger *zap.Logger
}

type options struct {
	migrate  bool
	attempts int
	sleep    time.Duration
}

type Option func(*options)

// WithMigrate toggles applying the embedded migrations on connect.
func WithMigrate(migrate bool) Option {
	return func(o *options) {
		o.migrate = migrate
	}
}

// WithRetry sets how often and how patiently the first connection is tried.
func WithRetry(attempts int, sleep time.Duration) Option {
	return func(o *options) {
		o.attempts = attempts
		o.sleep = sleep
	}
}

func (conn *Conn) DB() *sql.DB {
	return conn.conn
}

// NewDatabase connects to postgres. path may omit the postgres:// scheme.
func NewDatabase(path string, logger *zap.Logger, opts ...Option) (*Conn, error) {
	o := &options{migrate: true, attempts: 3, sleep: 10 * time.Second}
	for _, opt := range opts {
		opt(o)
	}
	dsn := path
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		dsn = fmt.Sprintf("postgres://%s", path)
	}

	db, err := retryConn(logger, o.attempts, o.sleep, func() (*sql.DB, error) {
		logger.Info("connecting to postgres")
		conn, err := otelsql.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
		if err := conn.Ping(); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return conn, nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("connected to postgres")

	st := &Conn{
		conn:   db,
		path:   path,
		logger: logger,
	}
	if o.migrate {
		if err := migrateDB(db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return st, nil
}

func (conn *Conn) Close() error {
	return conn.conn.Close()
}

// WithTx runs fn in a transaction, committing when fn returns nil and
// rolling back otherwise.
func (conn *Conn) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("unable to commit transaction: %w", cerr)
		}
	}()
	return fn(tx)
}

func migrateDB(conn *sql.DB, logger *zap.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(zap.NewStdLog(logger.Named("goose")))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("unable to set migration dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("unable to run migrations: %w", err)
	}
	return nil
}

// retryConn calls callback up to attempts times, sleeping between tries, and
// returns the last error when every try fails.
func retryConn(logger *zap.Logger, attempts int, sleep time.Duration, callback func() (*sql.DB, error)) (*sql.DB, error) {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		var conn *sql.DB
		conn, err = callback()
		if err == nil {
			return conn, nil
		}
		logger.Warn("error connecting", zap.Int("attempt", i), zap.Int("attempts", attempts), zap.Error(err))
		if i < attempts {
			time.Sleep(sleep)
		}
	}
	return nil, fmt.Errorf("connection failed after %d attempts: %w", attempts, err)
}
