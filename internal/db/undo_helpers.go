package db

import (
	"database/sql"
	"fmt"
	"time"

	"datagrid/internal/model"
)

// InsertPersonWithID re-creates a person under its original ID.
func InsertPersonWithID(db *sql.DB, p model.Person) error {
	return insertPersonWithID(db, p)
}

// RestorePeople re-creates deleted people in one transaction.
func RestorePeople(db *sql.DB, people []model.Person) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range people {
		if err := insertPersonWithID(tx, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertPersonWithID(e execer, p model.Person) error {
	query := `
		INSERT INTO people (id, name, age, email, joined_at)
		VALUES (?, ?, ?, ?, ?)
	`

	var age, email interface{}
	if p.Age != nil {
		age = *p.Age
	}
	if p.Email != "" {
		email = p.Email
	}
	joinedAt := time.Now().UTC().Format(timeLayout)
	if !p.Joined.IsZero() {
		joinedAt = p.Joined.UTC().Format(timeLayout)
	}

	if _, err := e.Exec(query, p.ID, p.Name, age, email, joinedAt); err != nil {
		return fmt.Errorf("failed to insert person with id: %w", err)
	}
	return nil
}
