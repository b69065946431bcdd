package hotel

const (
	MsgCreated     = "Hotel created."
	MsgUpdated     = "Hotel updated."
	MsgVoted       = "Vote accepted."
	MsgFmtNotFound = "Hotel with ID %d not found!"
	MsgInvalidMark = "Invalid mark. The mark must be between 1 and 5."
)
