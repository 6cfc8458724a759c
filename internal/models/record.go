// ABOUTME: Record model and Kind/MeasurementKind enums for workout entries.
// ABOUTME: Defines the Exercise and WOD variants plus the tagged Record union.
package models

// Kind discriminates the two logical record variants stored in the
// workouts relation.
type Kind string

const (
	KindExercise Kind = "exercise"
	KindWOD      Kind = "wod"
)

// MeasurementKind says which subset of {weight, reps, distance, time}
// an exercise entry is measured by.
type MeasurementKind string

const (
	MeasurementWeightReps   MeasurementKind = "weight_reps"
	MeasurementTimeOnly     MeasurementKind = "time_only"
	MeasurementDistanceTime MeasurementKind = "distance_time"
	MeasurementRepsOnly     MeasurementKind = "reps_only"
)

// AllMeasurementKinds lists the valid measurement kinds.
var AllMeasurementKinds = []MeasurementKind{
	MeasurementWeightReps,
	MeasurementTimeOnly,
	MeasurementDistanceTime,
	MeasurementRepsOnly,
}

// IsValidMeasurementKind checks if a string is a valid measurement kind.
func IsValidMeasurementKind(s string) bool {
	for _, mk := range AllMeasurementKinds {
		if string(mk) == s {
			return true
		}
	}
	return false
}

// Exercise is a strength entry. Numeric fields are stored as strings,
// exactly as the caller provided them; parsing is the caller's concern.
type Exercise struct {
	ID          int64
	Name        string
	Date        string
	Measurement MeasurementKind
	Weight      string
	Reps        string
	Distance    string
	Time        string
	Notes       string
}

// NewExercise creates an Exercise with the given name and ISO-8601 date.
// The ID is assigned by the store on insert.
func NewExercise(name, date string, measurement MeasurementKind) *Exercise {
	return &Exercise{
		Name:        name,
		Date:        date,
		Measurement: measurement,
	}
}

// WithWeight sets the weight value (numeric-as-string).
func (e *Exercise) WithWeight(weight string) *Exercise {
	e.Weight = weight
	return e
}

// WithReps sets the rep count (numeric-as-string).
func (e *Exercise) WithReps(reps string) *Exercise {
	e.Reps = reps
	return e
}

// WithDistance sets the distance in meters (numeric-as-string).
func (e *Exercise) WithDistance(distance string) *Exercise {
	e.Distance = distance
	return e
}

// WithTime sets the elapsed time in seconds (numeric-as-string).
func (e *Exercise) WithTime(t string) *Exercise {
	e.Time = t
	return e
}

// WithNotes sets notes on the exercise.
func (e *Exercise) WithNotes(notes string) *Exercise {
	e.Notes = notes
	return e
}

// ClearUnmeasuredFields empties every value field that is not meaningful
// to the exercise's measurement kind. Applied unconditionally on every
// update so a measurement change can never leave stale values behind.
func (e *Exercise) ClearUnmeasuredFields() {
	switch e.Measurement {
	case MeasurementWeightReps:
		e.Distance = ""
		e.Time = ""
	case MeasurementTimeOnly:
		e.Weight = ""
		e.Reps = ""
		e.Distance = ""
	case MeasurementDistanceTime:
		e.Weight = ""
		e.Reps = ""
	case MeasurementRepsOnly:
		e.Weight = ""
		e.Distance = ""
		e.Time = ""
	}
}

// InferMeasurement derives a measurement kind from which value fields are
// populated. Used to backfill legacy rows that predate the measurement
// column. Priority: weight+reps, then distance+time, then time-only, then
// reps-only, with weight_reps as the fallback for empty rows.
func InferMeasurement(weight, reps, distance, timeVal string) MeasurementKind {
	switch {
	case weight != "" && reps != "":
		return MeasurementWeightReps
	case distance != "" && timeVal != "":
		return MeasurementDistanceTime
	case timeVal != "":
		return MeasurementTimeOnly
	case reps != "":
		return MeasurementRepsOnly
	default:
		return MeasurementWeightReps
	}
}

// WOD is a benchmark workout entry with a free-form scored result.
type WOD struct {
	ID          int64
	Name        string
	Date        string
	Description string
	Result      string
	Notes       string
}

// NewWOD creates a WOD with the given name and ISO-8601 date.
func NewWOD(name, date string) *WOD {
	return &WOD{
		Name: name,
		Date: date,
	}
}

// WithDescription sets the workout description.
func (w *WOD) WithDescription(description string) *WOD {
	w.Description = description
	return w
}

// WithResult sets the scored result (free-form, e.g. "4:32" or "12 rounds").
func (w *WOD) WithResult(result string) *WOD {
	w.Result = result
	return w
}

// WithNotes sets notes on the WOD.
func (w *WOD) WithNotes(notes string) *WOD {
	w.Notes = notes
	return w
}

// Record is the tagged union returned by ListAll. Exactly one of Exercise
// or WOD is non-nil, matching Kind.
type Record struct {
	Kind     Kind
	Exercise *Exercise
	WOD      *WOD
}

// ID returns the stored id of whichever variant the record holds.
func (r *Record) ID() int64 {
	if r.Exercise != nil {
		return r.Exercise.ID
	}
	if r.WOD != nil {
		return r.WOD.ID
	}
	return 0
}

// Name returns the name of whichever variant the record holds.
func (r *Record) Name() string {
	if r.Exercise != nil {
		return r.Exercise.Name
	}
	if r.WOD != nil {
		return r.WOD.Name
	}
	return ""
}

// Date returns the date of whichever variant the record holds.
func (r *Record) Date() string {
	if r.Exercise != nil {
		return r.Exercise.Date
	}
	if r.WOD != nil {
		return r.WOD.Date
	}
	return ""
}
