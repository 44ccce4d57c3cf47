package internal

// Set by ldflags at build time.
var (
	Branch  = "main"
	Version = "0.3.0"
	Commit  = ""
	Date    = ""
)

// FullVersion returns the version string, with the commit appended as build
// metadata when it is known.
func FullVersion() string {
	if Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}
