package utils

const (
	NotFoundErrCode           = "404"
	ValidationErrCode         = "509"
	UnexpectedErrCode         = "500"
	UnauthorizedErrCode       = "401"
	ForbiddenErrCode          = "403"
	BodyParserErrCode         = "400"
	InvalidCredentialsErrCode = "40101"
	EmptyFileErrCode          = "42201"
	UnsupportedFileErrCode    = "42202"

	NotFoundMsg           = "Not found!"
	UnexpectedMsg         = "An unexpected error has occurred."
	ValidationMsg         = "The given data was invalid."
	UnauthorizedMsg       = "Authentication failed."
	ForbiddenMsg          = "This action requires an elevated role."
	BodyParserMsg         = "The given values could not be parsed."
	InvalidCredentialsMsg = "Invalid credentials."
	EmptyFileMsg          = "File appears to be empty."
	UnsupportedFileMsg    = "Unsupported file format."
)

type ErrorBag struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Cause   error  `json:"cause"`
}

func (e ErrorBag) Error() string {
	return e.Cause.Error()
}

func (e ErrorBag) GetCode() string {
	return e.Code
}
