// Package seed holds the fixed records written by the seed command.
package seed

import "todoseed/internal/service"

// Tasks returns the three sharing/visibility fixtures in write order:
// an urgent public task, a secret task and a regular public task.
func Tasks(teamID, userID string) []service.Task {
	return []service.Task{
		{
			Content:   "Urgent Team Task (P1)",
			Priority:  1,
			IsSecret:  false,
			CreatedBy: userID,
			TeamID:    teamID,
		},
		{
			Content:   "Secret Team Task (P2)",
			Priority:  2,
			IsSecret:  true,
			CreatedBy: userID,
			TeamID:    teamID,
		},
		{
			Content:   "Regular Team Task (P3)",
			Priority:  3,
			IsSecret:  false,
			CreatedBy: userID,
			TeamID:    teamID,
		},
	}
}
