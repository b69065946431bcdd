package message

const (
	InvalidUser           = "Invalid username/password."
	InvalidInput          = "Invalid input."
	UnknownField          = "Unknown field in payload."
	Unauthorized          = "You are not authorized."
	Forbidden             = "You are not authorized or you do not have access!"
	ServerError           = "An internal server error occurred. Please try again later."
	RequestTimeout        = "Request cancelled or timeout."
	DateInputError        = "Date input error!"
	PastDates             = "Past dates cannot be specified!"
	ArrivalAfterDeparture = "The arrival date cannot be later than the departure date!"
	EnvErrFmt             = "environment variable is not set: %s"
	MissingParamFmt       = "Missing request parameter: %s!"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
