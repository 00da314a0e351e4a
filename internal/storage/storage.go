package storage

// All persisted keys share the application prefix so they never collide
// with unrelated data living in the same store.
const keyPrefix = "personalfit_"

// Storage keys, one per managed collection plus the user session record.
const (
	KeyUser         = keyPrefix + "user"
	KeyStudents     = keyPrefix + "students"
	KeyExercises    = keyPrefix + "exercises"
	KeyWorkouts     = keyPrefix + "workouts"
	KeyWorkoutLogs  = keyPrefix + "workout_logs"
	KeyMessages     = keyPrefix + "messages"
	KeyAssessments  = keyPrefix + "assessments"
	KeyChallenges   = keyPrefix + "challenges"
	KeyAchievements = keyPrefix + "achievements"
)

// KeyValue is the local persistence adapter: JSON-serializable values
// stored under namespaced keys. It never raises to its caller; every
// failure is absorbed and surfaced only as a logged side effect.
type KeyValue interface {
	// Get deserializes the value stored under key into out and reports
	// whether a usable value was found. An unset key and a corrupt
	// stored value both report false; corruption is logged, not returned.
	Get(key string, out any) bool

	// Set serializes value and stores it under key. Serialization or
	// write failures are logged and leave the prior stored state intact.
	Set(key string, value any)

	// Remove deletes the key, best effort.
	Remove(key string)

	// Clear drops everything stored under the application prefix.
	Clear()
}
