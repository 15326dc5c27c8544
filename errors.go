package cornstats

import "fmt"

// Stage identifies the pipeline stage an error came from.
type Stage string

const (
	StageLoad      Stage = "load"
	StageClean     Stage = "clean"
	StageDescribe  Stage = "describe"
	StageVisualize Stage = "visualize"
	StageTest      Stage = "test"
	StageModel     Stage = "model"
	StageExport    Stage = "export"
)

// IOError wraps a failure to read or write a file.
type IOError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: cannot access %s: %v", e.Stage, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// SchemaError reports a malformed header or a missing required column.
type SchemaError struct {
	Stage Stage
	Msg   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: schema: %s", e.Stage, e.Msg)
}

// InsufficientDataError reports a comparison group too small to test.
type InsufficientDataError struct {
	Stage Stage
	Group string
	N     int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: group %s has %d observations, need at least 2", e.Stage, e.Group, e.N)
}

// RankDeficiencyError reports a singular or under-determined design matrix.
type RankDeficiencyError struct {
	Model  string
	Reason string
}

func (e *RankDeficiencyError) Error() string {
	return fmt.Sprintf("model: %s design matrix is rank deficient: %s", e.Model, e.Reason)
}
