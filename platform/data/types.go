package data

// Types of a value as a string.
type Types string

// These valid types as constants, limited to what the expr language produces.
const (
	BOOL  Types = "bool"
	ERROR Types = "error"
	INT   Types = "int"
	NONE  Types = "none"
)
