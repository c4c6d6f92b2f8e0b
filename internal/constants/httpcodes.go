// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// response codes, headers, and content types. These constants ensure consistent
// HTTP communication patterns across the application and provide meaningful
// standardized responses to API clients.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
// These codes indicate the result of the HTTP request processing.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates that the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusUnprocessableEntity indicates that the request was well-formed but contains semantic errors.
	StatusUnprocessableEntity = 422

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500

	// StatusBadGateway indicates that an upstream service rejected or failed a request.
	StatusBadGateway = 502

	// StatusServiceUnavailable indicates that the server is temporarily unable to handle requests.
	StatusServiceUnavailable = 503
)

// Application Error Codes define machine-readable codes attached to error responses.
// These codes provide more detailed information beyond HTTP status codes.
const (
	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized indicates missing or invalid authentication.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates the user lacks permission for the requested action.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates that the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates an unsupported HTTP method.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates a state conflict with an existing resource.
	CodeConflict = "conflict"

	// CodeValidationError indicates that request validation failed.
	CodeValidationError = "validation_error"

	// CodeDuplicateResource indicates an attempt to create an already existing resource.
	CodeDuplicateResource = "duplicate_resource"

	// CodeInvalidCredentials indicates that login credentials were rejected.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeTokenExpired indicates that an authentication token has expired.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid indicates that an authentication token is malformed or has a bad signature.
	CodeTokenInvalid = "token_invalid"

	// CodeDeliveryFailed indicates that an outbound email could not be delivered.
	CodeDeliveryFailed = "delivery_failed"

	// CodeInternalError indicates an unexpected server-side failure.
	CodeInternalError = "internal_error"
)

// HTTP Headers define the header names used by the application.
const (
	// HeaderContentType identifies the media type of the request or response body.
	HeaderContentType = "Content-Type"

	// HeaderAuthorization carries the bearer token for authenticated requests.
	HeaderAuthorization = "Authorization"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the response may be framed.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderXXSSProtection enables legacy browser XSS filtering.
	HeaderXXSSProtection = "X-XSS-Protection"

	// HeaderReferrerPolicy controls referrer information sent with requests.
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Header Values define the standard values for security and content headers.
const (
	// ContentTypeJSON is the media type for JSON request and response bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeOptionsNoSniff disables content type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny forbids rendering the response inside a frame.
	FrameOptionsDeny = "DENY"

	// XSSProtectionModeBlock blocks pages when an XSS attack is detected.
	XSSProtectionModeBlock = "1; mode=block"

	// ReferrerPolicyStrictOrigin limits referrer information to the origin.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS Values define the cross-origin policy announced to browsers.
// The API is consumed by a separate frontend, so any origin is allowed.
const (
	// CORSAllowedMethods lists the HTTP methods permitted for cross-origin requests.
	CORSAllowedMethods = "GET, POST, PUT, PATCH, DELETE"

	// CORSAllowedHeaders lists the request headers permitted for cross-origin requests.
	CORSAllowedHeaders = "Content-Type, Authorization"

	// CORSMaxAge is how long, in seconds, browsers may cache preflight results.
	CORSMaxAge = "300"
)
