package room

const (
	MsgCreated     = "Room created."
	MsgUpdated     = "Room updated."
	MsgFmtNotFound = "Room with ID %d not found!"
)
