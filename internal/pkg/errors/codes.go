package errors

import "net/http"

var (
	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place details are not available",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Place search provider is unavailable",
		http.StatusBadGateway,
	)

	ErrAssistantUnavailable = New(
		"ASSISTANT_UNAVAILABLE",
		"TripAi is not available right now. Please try again later.",
		http.StatusBadGateway,
	)

	ErrBlogNotFound = New(
		"BLOG_NOT_FOUND",
		"This blog does not exist",
		http.StatusNotFound,
	)

	ErrThreadNotFound = New(
		"THREAD_NOT_FOUND",
		"Thread not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailInUse = New(
		"EMAIL_IN_USE",
		"Email address already in use",
		http.StatusBadRequest,
	)

	ErrInvalidEmail = New(
		"INVALID_EMAIL",
		"Invalid email address provided",
		http.StatusBadRequest,
	)

	ErrWeakPassword = New(
		"WEAK_PASSWORD",
		"Password must be at least 5 characters long",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidResetCode = New(
		"INVALID_RESET_CODE",
		"Reset code is invalid or has expired",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
