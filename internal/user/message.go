package user

const (
	MsgCreated        = "User created."
	MsgUpdated        = "User updated."
	MsgFmtNotFound    = "User with ID %d not found!"
	MsgFmtDuplicate   = "User with name %s and/or email %s is already registered!"
	MsgFmtInvalidRole = "Invalid role value: %s!"
)
