package models

import (
	"time"

	"github.com/dmitrijs2005/gotasks/internal/common"
)

// DefaultPriority is assigned to every newly created task.
const DefaultPriority = 3

// Task is a to-do item owned by a single user (numeric foreign key).
// Priority is an unbounded ordering key: promote/demote move it by one with
// no clamping, so it may go negative or arbitrarily high.
type Task struct {
	ID        int64
	UserID    int64
	Title     string
	Complete  bool
	Priority  int
	DueDate   time.Time
	CreatedAt time.Time
}

// DueDateDisplay renders the due date in the fixed "YYYY-MM-DD" form used
// on the wire and in the list view.
func (t *Task) DueDateDisplay() string {
	return t.DueDate.Format(common.DueDateLayout)
}
