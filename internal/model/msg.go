package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// PeopleLoadedMsg is sent when people are loaded.
type PeopleLoadedMsg struct {
	People []Person
}

// PersonSavedMsg is sent when a person is successfully saved.
type PersonSavedMsg struct {
	ID    int64
	After Person
}

// PeopleDeletedMsg is sent after the selected people are deleted.
type PeopleDeletedMsg struct {
	Deleted []Person
}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenPeople Screen = iota
	ScreenPersonForm
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
