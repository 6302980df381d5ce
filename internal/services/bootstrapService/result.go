package bootstrapservice

import "time"

type StepStatus string

const (
	StatusOK      StepStatus = "ok"
	StatusSkipped StepStatus = "skipped"
	StatusFailed  StepStatus = "failed"
)

// StepResult captures one pipeline step's outcome. Failures are carried as
// values instead of relying on implicit exit-code state.
type StepResult struct {
	Name     string
	Status   StepStatus
	Detail   string
	Duration time.Duration
	Err      error
}

func okResult(name, detail string, started time.Time) StepResult {
	return StepResult{Name: name, Status: StatusOK, Detail: detail, Duration: time.Since(started)}
}

func skippedResult(name, detail string, started time.Time) StepResult {
	return StepResult{Name: name, Status: StatusSkipped, Detail: detail, Duration: time.Since(started)}
}

func failedResult(name string, err error, started time.Time) StepResult {
	return StepResult{Name: name, Status: StatusFailed, Detail: err.Error(), Duration: time.Since(started), Err: err}
}
