package version

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X github.com/rougho/task-tracker/internal/version.Version=v1.0.0"
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// CommitSHA is the git commit SHA at build time.
	CommitSHA = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Full returns the version with commit and build date, as shown by
// --version.
func Full() string {
	return Version + " (commit " + CommitSHA + ", built " + BuildDate + ")"
}
