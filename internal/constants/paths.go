package constants

// Application paths
const (
	// LogFileName is the default debug log file name
	LogFileName = "ansicolor.log"

	// LogFilePermissions defines the permissions for log files
	LogFilePermissions = 0666
)
