package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// ErrApply возвращается, если схему не удалось применить
var ErrApply = errors.New("migrations: failed to apply schema")

// Apply накатывает встроенные миграции до последней версии
// Применённая версия хранится в schema_migrations, повторный запуск ничего не делает
// db отдаётся мигратору целиком и закрывается вместе с ним
func Apply(db *sql.DB) error {
	src, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("%w: open source: %v", ErrApply, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("%w: create postgres driver: %w", ErrApply, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return fmt.Errorf("%w: create migrate instance: %w", ErrApply, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: up: %w", ErrApply, err)
	}

	return nil
}
