package location

//go:generate go run github.com/stowr/backend/cmd/stowr-gen -type Location

// Rename changes the display name of the location.
//
//stowr:command
func (l *Location) Rename(newName string) {
	l.Name = newName
}
