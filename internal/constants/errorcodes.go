// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling and messaging.
// User-facing error messages are crafted to be informative without revealing
// implementation details that could aid in potential attacks.
package constants

// User-Facing Messages define standardized strings returned in response bodies.
const (
	// MsgUserCreated confirms a successful signup.
	MsgUserCreated = "User created successfully"

	// MsgLoginSuccess confirms a successful login.
	MsgLoginSuccess = "Login successful"

	// MsgResetLinkSent confirms that a password reset email was dispatched.
	MsgResetLinkSent = "Reset link sent to your email"

	// MsgPasswordUpdated confirms that a password was changed through the reset flow.
	MsgPasswordUpdated = "Password updated successfully"

	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgUserNotFound indicates that no account exists for the supplied email.
	MsgUserNotFound = "A user with this email could not be found"

	// MsgWrongPassword indicates that the supplied password did not match.
	MsgWrongPassword = "Wrong password"

	// MsgDuplicateEmail indicates a signup attempt with an already registered email.
	MsgDuplicateEmail = "User with this email already exists"

	// MsgInvalidResetToken indicates a rejected password reset token.
	MsgInvalidResetToken = "Invalid or expired reset token"

	// MsgValidationFailed is the top-level message for 422 responses.
	MsgValidationFailed = "Validation failed"

	// MsgDeliveryFailed indicates that the reset email could not be sent.
	MsgDeliveryFailed = "Failed to send reset email"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgResourceNotFound provides a generic not-found message.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgAccessDenied indicates that the user lacks permission for the requested action.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgMethodNotAllowed indicates an unsupported HTTP method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgEmptyRequestBody indicates a request with no body where one is required.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates a request body that could not be parsed.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgRequestBodyTooLarge indicates a request body exceeding the configured limit.
	MsgRequestBodyTooLarge = "Request body must not be larger than 1MB"
)
