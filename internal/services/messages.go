// Package services – user-facing response messages
//
// Both transports (the gin server and the stateless function handlers) render
// the same workflow outcomes, so the submitter-visible strings live here once
// rather than drifting between the two.
package services

// Response messages shared by both deployment shapes.
const (
	MsgMissingFields    = "Please fill in all required fields."
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgInvalidPayload   = "Invalid request payload."
	MsgSaveFailed       = "Error saving contact. Please try again."
	MsgReceived         = "Thank you! Your consultation request has been received. We'll contact you soon."
	MsgListFailed       = "Error fetching contacts."
	MsgGetFailed        = "Error fetching contact."
	MsgNotFound         = "Contact not found."
	MsgMethodNotAllowed = "Method not allowed"
	MsgServerRunning    = "Server is running"
	MsgInternal         = "An error occurred. Please try again later."
)
