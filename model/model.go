package model

import (
	"strings"
	"time"
)

// DefaultFolder is used when no task names a folder to start in.
const DefaultFolder = "inbox"

// dateLayout renders created dates as DD/MM/YY.
const dateLayout = "02/01/06"

// Task is an individual todo item.
// Folder is a free-form tag; there is no folder registry.
type Task struct {
	Text      string
	Done      bool
	Folder    string
	CreatedAt time.Time
}

// InFolder reports whether the task belongs to folder by exact match.
func (t Task) InFolder(folder string) bool {
	return t.Folder == folder
}

// SameFolder compares folder names the way folder deletion does.
func SameFolder(a, b string) bool {
	return strings.EqualFold(a, b)
}

// DateLabel returns the creation date in the task table format.
func (t Task) DateLabel() string {
	return t.CreatedAt.Format(dateLayout)
}
