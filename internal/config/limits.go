package config

// Validation limits shared by the request types and handlers.
const (
	MaxFolderNameLength = 255
	MaxFileNameLength   = 255
)

// Expiring-files window bounds, in days.
const (
	DefaultExpiryWindowDays = 28
	MaxExpiryWindowDays     = 365
)
