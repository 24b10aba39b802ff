package buildinfo

// These values are injected via ldflags for release binaries.
// They default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Short returns a printable version string, defaulting to "dev".
func Short() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
