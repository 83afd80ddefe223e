package utils

// Context

const (
	RequestIDKey = "requestid"
	ValidatorKey = "validator"
	LocalizerKey = "localizer"
)

// Session

const (
	SessionUserIDKey    = "userID"
	SessionUserEmailKey = "userEmail"
	SessionUserNameKey  = "userName"
	SessionUserRoleKey  = "userRole"
)

const (
	EnglishLanguage = "en"
)
