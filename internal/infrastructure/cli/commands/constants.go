package commands

// Flag defaults
const (
	// DefaultCSVFlag is the command file used when --file is omitted
	DefaultCSVFlag = "commands.csv"
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrIndexNotNumber           = "index must be a non-negative integer"
	ErrPromptRequired           = "prompt is required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgConfigurationReset       = "Configuration reset to defaults"
	MsgNoMatches                = "No matching commands."
)
