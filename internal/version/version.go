package version

// Version contains the application version information.
// Set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/assemble/internal/version.Version=v1.2.0".
var Version = "unknown"

// Build metadata, also ldflags-set.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
