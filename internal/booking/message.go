package booking

const (
	MsgCreated         = "Room booked."
	MsgRoomUnavailable = "The room is booked for your dates!"
)
