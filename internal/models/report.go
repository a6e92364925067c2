package models

// TeamClosedCount is one row of the closed-tasks-by-team report.
type TeamClosedCount struct {
	Name           string `json:"name"`
	CompletedTasks int    `json:"completedTasks"`
}

// ProjectPendingDays is one row of the pending-task aging report:
// the worst-case number of days until the project's outstanding tasks
// are due. Overdue tasks do not contribute, so a project whose pending
// tasks are all overdue reports zero.
type ProjectPendingDays struct {
	Project              string `json:"project"`
	RemainingDaysToClose int    `json:"remainingDaysToClose"`
}
