package model

import "time"

// Person is a row in the people table.
type Person struct {
	ID     int64
	Name   string
	Age    *int
	Email  string
	Joined time.Time
}

// NewPerson represents data for creating a person.
type NewPerson struct {
	Name  string
	Age   *int
	Email string
}

// Person returns the row the data describes once stored under id.
func (p NewPerson) Person(id int64, joined time.Time) Person {
	return Person{
		ID:     id,
		Name:   p.Name,
		Age:    p.Age,
		Email:  p.Email,
		Joined: joined,
	}
}
