package constants

// Route Paths define the HTTP endpoints exposed by the API.
const (
	// RouteSignup registers a new user account.
	RouteSignup = "/user/signup"

	// RouteLogin authenticates a user and issues a session token.
	RouteLogin = "/user/login"

	// RouteResetPassword requests a password reset email.
	RouteResetPassword = "/user/reset-password"

	// RouteUpdatePassword confirms a password reset with a token.
	RouteUpdatePassword = "/user/update-password"

	// RouteMe returns the authenticated user's profile.
	RouteMe = "/user/me"

	// RouteHealth reports service and database health.
	RouteHealth = "/health"

	// RouteVersion reports the running application version.
	RouteVersion = "/version"
)
