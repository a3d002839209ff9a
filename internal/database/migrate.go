package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"medread/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFS embed.FS

// Oracle errors for objects that already exist. Re-running a migration is a no-op for them.
var alreadyExistsCodes = []string{
	"ORA-00955", // name is already used by an existing object
	"ORA-01408", // such column list already indexed
}

// RunMigrations applies every embedded *.up.sql file in name order.
// go-ora executes one statement per call, so files are split on ';' line endings.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	return runMigrations(ctx, db, migrationFS)
}

func runMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS) error {
	log := logger.Get()

	files, err := fs.Glob(fsys, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file, err)
		}

		for i, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if isAlreadyExists(err) {
					log.Info("Skipping existing object", zap.String("file", file), zap.Int("statement", i+1))
					continue
				}
				return fmt.Errorf("could not execute statement %d of %s: %w", i+1, file, err)
			}
		}
		log.Info("Executed migration", zap.String("file", file))
	}

	log.Info("Migrations completed successfully", zap.Int("files", len(files)))
	return nil
}

// SplitStatements splits a SQL script on semicolons that end a line. The terminator is dropped.
func SplitStatements(script string) []string {
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
			stmts = append(stmts, current.String())
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

func isAlreadyExists(err error) bool {
	msg := err.Error()
	for _, code := range alreadyExistsCodes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}
