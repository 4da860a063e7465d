package routes

var (
	UsersDurationSecondsBuckets   = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	PokemonDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	LoginDurationSecondsBuckets   = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	UsersRouteAPI   = "/api/v1/users"
	PokemonRouteAPI = "/api/v1/pokemon"
	LoginRouteAPI   = "/api/v1/auth/login"
	MetricsRouteAPI = "/metrics"

	// Query parameter names and defaults for the pokemon route
	LimitParam    = "limit"
	OffsetParam   = "offset"
	DefaultLimit  = 20
	DefaultOffset = 0

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// message constants
	MsgLoginSuccessful = "Login successful"

	// Error messages
	ErrMethodNotAllowed       = "method not allowed"
	ErrInvalidContentType     = "content-Type must be application/json"
	ErrInvalidRequestBody     = "invalid request body"
	ErrValidationFailed       = "data validation failed"
	ErrFailedToListUsers      = "failed to list users"
	ErrFailedToEncodeResponse = "failed to encode response"
	ErrFailedToGenerateToken  = "failed to generate session token"
	ErrInvalidCredentials     = "invalid username or password"

	// metrics constants
	HTTPRequestsTotal     = "http_requests_total"
	HTTPRequestsTotalHelp = "Total number of HTTP requests received, by route"
	RouteLabel            = "route"

	UsersRequestsTotal         = "users_requests_total"
	UsersRequestsTotalHelp     = "Total number of user listing requests received"
	UsersErrorsTotal           = "users_errors_total"
	UsersErrorsTotalHelp       = "Total number of errors during user listing requests"
	UsersDurationSeconds       = "users_duration_seconds"
	UsersDurationSecondsHelp   = "Duration of user listing requests in seconds"
	PokemonRequestsTotal       = "pokemon_requests_total"
	PokemonRequestsTotalHelp   = "Total number of pokemon listing requests received"
	PokemonUpstreamErrors      = "pokemon_upstream_errors_total"
	PokemonUpstreamErrorsHelp  = "Total number of failed upstream pokemon calls"
	PokemonDurationSeconds     = "pokemon_duration_seconds"
	PokemonDurationSecondsHelp = "Duration of pokemon listing requests in seconds"
	LoginRequestsTotal         = "login_requests_total"
	LoginRequestsTotalHelp     = "Total number of login requests received"
	LoginSuccessTotal          = "login_success_total"
	LoginSuccessTotalHelp      = "Total number of successful login requests"
	LoginFailedTotal           = "login_failed_total"
	LoginFailedTotalHelp       = "Total number of failed login requests"
	LoginDurationSeconds       = "login_duration_seconds"
	LoginDurationSecondsHelp   = "Duration of login requests in seconds"
	ServiceStartTimestamp      = "service_start_timestamp_seconds"
	ServiceStartTimestampHelp  = "Unix time at which the service started"
)
