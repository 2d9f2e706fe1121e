package resolver

// Origin records where a resolved value came from.
type Origin string

const (
	// OriginEnv means the value was taken from an environment variable.
	OriginEnv Origin = "env"
	// OriginFile means the value was read from the version file.
	OriginFile Origin = "file"
	// OriginSCM means the value was looked up in source control.
	OriginSCM Origin = "scm"
	// OriginClock means the value was derived from the current time.
	OriginClock Origin = "clock"
	// OriginComposed means the value was assembled from other values.
	OriginComposed Origin = "composed"
	// OriginDefault means a lookup failed or had no input and a fixed
	// fallback was substituted.
	OriginDefault Origin = "default"
)

// Value is a resolved string together with its origin.
type Value struct {
	Text   string `json:"value"`
	Origin Origin `json:"origin"`
	// Err explains why a fallback was used.
	Err error `json:"-"`
}

// Defaulted reports whether the value is a fallback.
func (v Value) Defaulted() bool {
	return v.Origin == OriginDefault
}

// String returns the value text.
func (v Value) String() string {
	return v.Text
}
