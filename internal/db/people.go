package db

import (
	"database/sql"
	"fmt"
	"time"

	"datagrid/internal/model"
)

const selectPeople = `
	SELECT id, name, age, email, joined_at
	FROM people
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(s rowScanner) (model.Person, error) {
	var p model.Person
	var age sql.NullInt64
	var email sql.NullString
	var joinedAt string
	if err := s.Scan(&p.ID, &p.Name, &age, &email, &joinedAt); err != nil {
		return model.Person{}, err
	}
	if age.Valid {
		n := int(age.Int64)
		p.Age = &n
	}
	p.Email = email.String
	if t, err := time.Parse(time.RFC3339, joinedAt); err == nil {
		p.Joined = t
	}
	return p, nil
}

// ListPeople retrieves all people in insertion order.
func ListPeople(db *sql.DB) ([]model.Person, error) {
	rows, err := db.Query(selectPeople + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var results []model.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return results, nil
}

// GetPerson retrieves a single person by ID.
func GetPerson(db *sql.DB, id int64) (model.Person, error) {
	p, err := scanPerson(db.QueryRow(selectPeople+" WHERE id = ?", id))
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}
	return p, nil
}

// InsertPerson creates a new person.
func InsertPerson(db *sql.DB, p model.NewPerson) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO people (name, age, email)
		VALUES (?, ?, ?)
	`

	var age, email interface{}
	if p.Age != nil {
		age = *p.Age
	}
	if p.Email != "" {
		email = p.Email
	}

	result, err := db.Exec(query, p.Name, age, email)
	if err != nil {
		return 0, fmt.Errorf("failed to insert person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// DeletePeople deletes people by ID.
func DeletePeople(db *sql.DB, ids []int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.Exec("DELETE FROM people WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete person %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountPeople returns the number of stored people.
func CountPeople(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM people").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return n, nil
}

func intPtr(n int) *int { return &n }

// SamplePeople is the demo data inserted by SeedPeople.
var SamplePeople = []model.NewPerson{
	{Name: "John Doe", Age: intPtr(25), Email: "john.doe@example.com"},
	{Name: "Jane Smith", Age: intPtr(30), Email: "jane.smith@example.com"},
	{Name: "Sam Wilson", Age: intPtr(22)},
	{Name: "John", Age: intPtr(25)},
	{Name: "Jane", Age: intPtr(30)},
}

// SeedPeople inserts SamplePeople and returns how many rows were added.
func SeedPeople(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Spread join dates out so the joined column has something to sort.
	base := time.Now().UTC().AddDate(0, 0, -len(SamplePeople)*7)
	for i, p := range SamplePeople {
		var email interface{}
		if p.Email != "" {
			email = p.Email
		}
		joined := base.AddDate(0, 0, i*7).Format(timeLayout)
		if _, err := tx.Exec(
			"INSERT INTO people (name, age, email, joined_at) VALUES (?, ?, ?, ?)",
			p.Name, *p.Age, email, joined,
		); err != nil {
			return 0, fmt.Errorf("failed to seed person %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(SamplePeople), nil
}
