// Package testing contains fixture builders and helper utilities used
// across tests.
package testing

const (
	// testDirPermissions is the permission mode for creating test directories.
	testDirPermissions = 0o755

	// testFilePermissions is the permission mode for creating test files.
	testFilePermissions = 0o644
)
