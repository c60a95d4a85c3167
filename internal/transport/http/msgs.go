package http

const (
	MsgInvalidID    = "invalid id"
	MsgInvalidJSON  = "invalid JSON"
	MsgValidation   = "missing mandatory fields"
	MsgNotFound     = "customer not found"
	MsgInternal     = "internal error"
	MsgDuplicateNIC = "NIC already exists"
	MsgNoFile       = "no file uploaded"
	MsgEmptyFile    = "file has no data rows"
)
