package config

const (
	// DefaultLogFile is the grader's log file name when none is given.
	DefaultLogFile = "tests.log"
	// DefaultVerbosity is the student runner's console verbosity.
	DefaultVerbosity = "normal"

	// EnvVerbosity overrides the console verbosity
	// (silent, minimal, normal, verbose).
	EnvVerbosity = "MATHLAB_VERBOSITY"
	// EnvLogFile overrides the grader's default log file name.
	EnvLogFile = "MATHLAB_LOGFILE"
)
