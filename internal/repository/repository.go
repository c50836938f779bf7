package repository

import (
	"context"
	"fmt"
	"time"

	"quest_admin/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("database is not configured")

	// Both match ErrNotFound; they tell apart which row a combined write missed.
	ErrProofNotFound = fmt.Errorf("quest proof %w", ErrNotFound)
	ErrQuestNotFound = fmt.Errorf("quest %w", ErrNotFound)
)

type Repository struct {
	db *sqlx.DB
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Transaction(ctx context.Context, t func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	err = t(tx)
	if err != nil {
		txErr := tx.Rollback()
		if txErr != nil {
			return errors.Wrapf(err, "rollback error: %v", txErr)
		}
		return err
	}
	return tx.Commit()
}

type Config struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
	SSLMode  string `json:"sslMode"`

	MaxOpenConns int           `json:"maxOpenConns"`
	ConnTimeout  time.Duration `json:"connTimeout"`
}

// Configured reports whether enough is set to reach a database at all.
// An unconfigured store puts the dashboard into demo mode.
func (c *Config) Configured() bool {
	return c.Host != "" && c.Name != ""
}

// New opens the pool and pings it once. A failed ping is logged rather than
// returned so the process can start degraded; the Monitor keeps probing.
func New(cfg Config) (*Repository, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	db, err := sqlx.Open("pgx", cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	timeout := cfg.ConnTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Logger().Warn("database ping failed, starting degraded", zap.Error(err))
	} else {
		logger.Logger().Info("Connected to database successfully")
	}

	return &Repository{db: db}, nil
}

func NewWithDB(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (c *Config) GetDatabaseURL() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		sslMode,
	)
}
