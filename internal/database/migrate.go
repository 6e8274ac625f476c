package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"homework-grader/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded migrations. The migration files are read
// through the golang-migrate iofs source; statements are executed one by one
// because Oracle rejects multi-statement batches.
type Migrator struct {
	db  *sqlx.DB
	src source.Driver
}

// NewMigrator opens the embedded migration source
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	return newMigrator(db, migrationFiles, "migrations")
}

func newMigrator(db *sqlx.DB, fsys fs.FS, path string) (*Migrator, error) {
	src, err := iofs.New(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("could not open migration source: %w", err)
	}
	return &Migrator{db: db, src: src}, nil
}

// Close releases the migration source
func (m *Migrator) Close() error {
	return m.src.Close()
}

// Up applies every migration that has not been applied yet, in version order
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	version, err := m.src.First()
	for err == nil {
		if _, ok := applied[version]; !ok {
			if err := m.apply(ctx, version, true); err != nil {
				return count, err
			}
			count++
		}
		version, err = m.src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return count, fmt.Errorf("could not list migrations: %w", err)
	}
	return count, nil
}

// Down reverts the most recently applied migration. It returns false when nothing is applied.
func (m *Migrator) Down(ctx context.Context) (bool, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return false, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return false, err
	}
	if len(applied) == 0 {
		return false, nil
	}
	versions := make([]uint, 0, len(applied))
	for v := range applied {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] > versions[j] })

	if err := m.apply(ctx, versions[0], false); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Migrator) apply(ctx context.Context, version uint, up bool) error {
	var (
		r          io.ReadCloser
		identifier string
		err        error
	)
	if up {
		r, identifier, err = m.src.ReadUp(version)
	} else {
		r, identifier, err = m.src.ReadDown(version)
	}
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	for _, stmt := range splitStatements(string(body)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}

	if up {
		_, err = m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, version)
	} else {
		_, err = m.db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = :1`, version)
	}
	if err != nil {
		return fmt.Errorf("could not record migration %d: %w", version, err)
	}

	direction := "down"
	if up {
		direction = "up"
	}
	logger.Get().Info("Executed migration",
		zap.Uint("version", version),
		zap.String("name", identifier),
		zap.String("direction", direction))
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var exists int
	err := m.db.GetContext(ctx, &exists,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)
	if err != nil {
		return fmt.Errorf("could not check schema_migrations table: %w", err)
	}
	if exists > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY)`); err != nil {
		return fmt.Errorf("could not create schema_migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[uint]struct{}, error) {
	var versions []uint
	if err := m.db.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("could not read applied migrations: %w", err)
	}
	applied := make(map[uint]struct{}, len(versions))
	for _, v := range versions {
		applied[v] = struct{}{}
	}
	return applied, nil
}

// splitStatements splits a migration file on ';' line endings and drops
// comment lines and the trailing semicolons Oracle does not accept.
func splitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				stmts = append(stmts, stmt)
			}
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		stmts = append(stmts, stmt)
	}
	return stmts
}

// RunMigrations applies all pending embedded migrations
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}
	defer m.Close()

	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Get().Info("Migrations completed successfully", zap.Int("applied", n))
	return nil
}
