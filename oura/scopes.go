package oura

// Scope represents an OAuth2 scope required to access specific Oura API
// endpoints.
type Scope string

const (
	// ScopeEmail allows reading the user's email address.
	ScopeEmail Scope = "email"

	// ScopePersonal allows reading personal information such as age,
	// height and weight.
	ScopePersonal Scope = "personal"

	// ScopeDaily allows reading daily summaries of activity, sleep and
	// readiness.
	ScopeDaily Scope = "daily"

	// ScopeHeartrate allows reading time-series heart rate data.
	ScopeHeartrate Scope = "heartrate"

	// ScopeWorkout allows reading the user's workout data.
	ScopeWorkout Scope = "workout"

	// ScopeTag allows reading the user's tags.
	ScopeTag Scope = "tag"

	// ScopeSession allows reading guided and unguided session data.
	ScopeSession Scope = "session"

	// ScopeSpo2 allows reading daily blood oxygen saturation averages.
	ScopeSpo2 Scope = "spo2"
)
