// Package common contains shared constants and sentinel errors used across
// task manager components.
package common

// SessionCookieName is the cookie used to carry the signed session token
// between the browser and the server.
const SessionCookieName = "session_token"

// DueDateLayout is the wire and display format for task due dates.
const DueDateLayout = "2006-01-02"
