// ABOUTME: SQL schema definition for the workout log database.
// ABOUTME: Defines the workouts relation, its meta table, and required columns.
package db

// The workouts relation stores both record variants in one flat row shape.
// The discriminator column is named "type" and the measurement column
// "measurement_type" for compatibility with databases written by earlier
// releases. All non-key columns are TEXT; numeric fields are stored as the
// string the caller provided.
const schema = `
CREATE TABLE IF NOT EXISTS workouts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    date TEXT NOT NULL,
    type TEXT NOT NULL,
    description TEXT,
    result TEXT,
    weight TEXT,
    reps TEXT,
    distance TEXT,
    time TEXT,
    measurement_type TEXT,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS workouts_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);
`

const (
	workoutsTable        = "workouts"
	schemaVersionMetaKey = "schema_version"
)

// currentSchemaVersion is recorded in workouts_meta once the live column set
// satisfies the required invariants.
const currentSchemaVersion = 2

// requiredColumns are the columns a current-version workouts table must
// carry. Databases written by older releases may lack them; the migration
// manager adds and backfills them.
var requiredColumns = []string{"measurement_type", "distance", "time"}

// columnOrder is the canonical ordering of the full column set, used when
// the table is rebuilt from a snapshot.
var columnOrder = []string{
	"id", "name", "date", "type", "description", "result",
	"weight", "reps", "distance", "time", "measurement_type", "notes",
}
