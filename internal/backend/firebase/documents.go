package firebase

import (
	"time"

	"todoseed/internal/service"
)

// taskDoc is the stored shape of a task document.
// CreatedAt is left zero on write so Firestore fills in the server time.
type taskDoc struct {
	Content     string    `firestore:"content"`
	Priority    int64     `firestore:"priority"`
	IsSecret    bool      `firestore:"isSecret"`
	IsCompleted bool      `firestore:"isCompleted"`
	CreatedBy   string    `firestore:"createdBy"`
	TeamID      string    `firestore:"teamId"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

// userDoc is the subset of a user profile read by exports.
type userDoc struct {
	DisplayName string `firestore:"displayName"`
}

func fromTask(t service.Task) taskDoc {
	return taskDoc{
		Content:     t.Content,
		Priority:    int64(t.Priority),
		IsSecret:    t.IsSecret,
		IsCompleted: t.IsCompleted,
		CreatedBy:   t.CreatedBy,
		TeamID:      t.TeamID,
	}
}

func (d taskDoc) toTask(id string) service.Task {
	return service.Task{
		ID:          id,
		Content:     d.Content,
		Priority:    int(d.Priority),
		IsSecret:    d.IsSecret,
		IsCompleted: d.IsCompleted,
		CreatedBy:   d.CreatedBy,
		TeamID:      d.TeamID,
		CreatedAt:   d.CreatedAt,
	}
}
