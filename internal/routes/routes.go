package routes

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/haguru/oak/internal/auth"
	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/models/dto"

	structValidator "github.com/go-playground/validator/v10"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	Gateway     interfaces.PokemonGateway
	Logger      interfaces.Logger
	PrivateKey  *ecdsa.PrivateKey
	validator   *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService,
	gateway interfaces.PokemonGateway, logger interfaces.Logger,
	privateKey *ecdsa.PrivateKey, validator *structValidator.Validate,
) *Route {
	return &Route{
		Metrics:     metrics,
		UserService: userService,
		Gateway:     gateway,
		Logger:      logger,
		PrivateKey:  privateKey,
		validator:   validator,
	}
}

// Users handles GET /api/v1/users: the full users table as JSON, in
// insertion order, with the password hash stripped.
func (r *Route) Users(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(UsersRequestsTotal)
		r.Metrics.IncCounterVec(HTTPRequestsTotal, UsersRouteAPI)
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	users, err := r.UserService.ListUsers(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToListUsers)
		if r.Metrics != nil {
			r.Metrics.IncCounter(UsersErrorsTotal)
		}
		return
	}

	if r.Metrics != nil {
		duration := time.Since(startTime).Seconds()
		r.Metrics.ObserveHistogram(UsersDurationSeconds, duration)
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		response = append(response, dto.FromUser(user))
	}

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "route", UsersRouteAPI, "error", err)
		if r.Metrics != nil {
			r.Metrics.IncCounter(UsersErrorsTotal)
		}
	}
}

// Pokemon handles GET /api/v1/pokemon?limit=&offset=: one page of the
// upstream list as JSON. An upstream failure is logged and counted but
// still answered with 200 and an empty array.
func (r *Route) Pokemon(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(PokemonRequestsTotal)
		r.Metrics.IncCounterVec(HTTPRequestsTotal, PokemonRouteAPI)
	}

	limit := r.queryInt(req, LimitParam, DefaultLimit)
	offset := r.queryInt(req, OffsetParam, DefaultOffset)

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	pokemon, err := r.Gateway.FetchPokemonList(req.Context(), limit, offset)
	if err != nil {
		// An upstream failure never fails the route, it answers with
		// an empty list.
		r.Logger.Warn("upstream pokemon call failed, returning empty list",
			"limit", limit, "offset", offset, "error", err)
		if r.Metrics != nil {
			r.Metrics.IncCounter(PokemonUpstreamErrors)
		}
		pokemon = nil
	}

	if r.Metrics != nil {
		duration := time.Since(startTime).Seconds()
		r.Metrics.ObserveHistogram(PokemonDurationSeconds, duration)
	}

	response := make([]dto.PokemonDTO, 0, len(pokemon))
	for _, p := range pokemon {
		response = append(response, dto.FromPokemon(p))
	}

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "route", PokemonRouteAPI, "error", err)
	}
}

// Login handles POST /api/v1/auth/login: a read-only credential check
// that sets an ES256 session cookie on success.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginRequestsTotal)
		r.Metrics.IncCounterVec(HTTPRequestsTotal, LoginRouteAPI)
	}

	if req.Header.Get(ContentType) != ContentTypeJson {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid content-type: %s", req.Header.Get(ContentType)), ErrInvalidContentType)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		return
	}

	loginRequest := &dto.LoginRequestDTO{}
	if err := json.NewDecoder(req.Body).Decode(loginRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidRequestBody)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		return
	}

	if err := r.validator.Struct(loginRequest); err != nil {
		errors := err.(structValidator.ValidationErrors)
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid login data: %s", errors), ErrValidationFailed)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	authenticated, err := r.UserService.AuthenticateUser(req.Context(), loginRequest.Username, loginRequest.Password)
	if r.Metrics != nil {
		duration := time.Since(startTime).Seconds()
		r.Metrics.ObserveHistogram(LoginDurationSeconds, duration)
	}
	if err != nil || !authenticated {
		if err == nil {
			err = fmt.Errorf("%s", ErrInvalidCredentials)
		}
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(http.StatusUnauthorized)
		r.errorResponse(w, err, ErrInvalidCredentials)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		return
	}

	sessionToken, err := auth.CreateToken(loginRequest.Username, r.PrivateKey)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToGenerateToken)
		if r.Metrics != nil {
			r.Metrics.IncCounter(LoginFailedTotal)
		}
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(LoginSuccessTotal)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
	})

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusOK)
	response := &dto.LoginResponseDTO{
		Message: MsgLoginSuccessful,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "route", LoginRouteAPI, "error", err)
	}
}

// queryInt reads an integer query parameter. An omitted or unparseable
// value falls back to the default; numeric values (including zero and
// negatives) are passed through as-is.
func (r *Route) queryInt(req *http.Request, name string, def int) int {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.Logger.Warn("unparseable query parameter, using default",
			"param", name, "value", raw, "default", def)
		return def
	}
	return value
}

func (r *Route) errorResponse(w http.ResponseWriter, err error, message string) {
	jsonResponse := map[string]string{
		"error":   err.Error(),
		"message": message,
	}
	_ = json.NewEncoder(w).Encode(jsonResponse)
}
