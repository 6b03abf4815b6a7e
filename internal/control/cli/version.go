package cli

// For proper builds, these variables should be set via ldflags.
var version = "0.1.0"
var hash = "unknown"

// Version returns the program version.
func Version() string {
	return version
}

// Hash returns the commit hash the program was built from.
func Hash() string {
	return hash
}
