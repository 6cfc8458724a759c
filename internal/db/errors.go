// ABOUTME: Sentinel errors for the workout store.
// ABOUTME: Callers distinguish failure classes with errors.Is.
package db

import "errors"

var (
	// ErrStorageUnavailable means the underlying SQLite engine could not be
	// opened or initialized. Fatal to application start.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMigrationValidation means a post-migration invariant check failed.
	// The migration manager attempts a rollback when it sees this.
	ErrMigrationValidation = errors.New("migration validation failed")

	// ErrBackupWrite means a snapshot artifact could not be durably written.
	// Migration aborts before altering the schema.
	ErrBackupWrite = errors.New("backup write failed")

	// ErrBackupCorrupt means a restore was attempted against an unreadable
	// artifact. The live table is never touched in that case.
	ErrBackupCorrupt = errors.New("backup corrupt")

	// ErrRecordNotFound means an update or delete referenced an id/kind pair
	// that does not exist. Recoverable; callers may re-fetch and retry.
	ErrRecordNotFound = errors.New("record not found")

	// ErrVerificationFailed means a write's post-condition re-read did not
	// confirm the expected state.
	ErrVerificationFailed = errors.New("write verification failed")

	// ErrSchemaTooNew means the on-disk schema version marker is ahead of
	// what this build knows how to handle.
	ErrSchemaTooNew = errors.New("schema is newer than this build")
)
