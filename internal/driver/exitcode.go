package driver

// Exit codes, fixed by spec.md §6.
const (
	RC_OK     = 0
	RC_EARGS  = 2
	RC_EIO    = 3
	RC_ELEX   = 10
	RC_EPARSE = 11
	RC_ESEM   = 12
	RC_EGEN   = 13
)
