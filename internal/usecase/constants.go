package usecase

// User-facing reply strings. The check/view line formats and the literal
// empty-result messages are part of the result contract.
const (
	msgBalanceLine       = "%s: %d days"
	msgNoValidTypes      = "No valid leave types specified."
	msgApproved          = "Leave request approved. %d days of %s scheduled from %s to %s."
	msgInsufficient      = "Insufficient %s balance. You have %d days available."
	msgNoActiveRequests  = "No active leave requests found."
	msgCancelAborted     = "Leave cancellation cancelled."
	msgCancelled         = "Cancelled %d days of %s from %s. Leave balance updated."
	msgHistoryLine       = "%s: %d days from %s to %s (%s)"
	msgNoHistory         = "No leave history found."
	msgNotUnderstood     = "I'm sorry, I didn't understand that request."
	msgEmployeeNotFound  = "Employee %s not found."
	msgInvalidDate       = "Invalid date format. Please use YYYY-MM-DD format."
	msgExtractionTimeout = "Sorry, interpreting your request took too long. Please try again."
	msgGenericError      = "An error occurred while processing your request: %s"
)
