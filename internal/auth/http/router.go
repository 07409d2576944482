package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/internal/auth/store"
	"github.com/S13G/nestwash/pkg/httpx"
	"github.com/S13G/nestwash/pkg/jwtx"
	"github.com/S13G/nestwash/pkg/slogx"

	_ "github.com/S13G/nestwash/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	OtpService     *service.OtpService
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOtp()
	r.registerAccounts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			NestWash Authentication Service API
//	@version		0.1.0
//	@description	Passwordless-first signup and session issuance for the NestWash platform.
//	@description
//	@description				Signup is a three-step flow: request an emailed one-time passcode,
//	@description				verify it, then complete registration with credentials and a role.
//	@description				Sessions are stateless HS256-signed JWTs.
//
//	@contact.name				NestWash Team
//	@contact.url				https://github.com/S13G/nestwash
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOtp() {
	requestHandler := &OtpRequestHandler{OtpService: r.OtpService}
	verifyHandler := &OtpVerifyHandler{OtpService: r.OtpService}

	// Both endpoints are public: they are the front door of signup.
	r.Mux.Handle("POST /v1/otp/request", requestHandler)
	r.Mux.Handle("POST /v1/otp/verify", verifyHandler)
}

func (r *Router) registerAccounts() {
	registerHandler := &AccountRegisterHandler{AccountService: r.AccountService}
	loginHandler := &AccountLoginHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
	}

	r.Mux.Handle("POST /v1/accounts/register", registerHandler)
	r.Mux.Handle("POST /v1/accounts/login", loginHandler)

	// GET /v1/me - the one gated endpoint; everything else is pre-auth
	meHandler := &MeHandler{AccountService: r.AccountService}
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/sub/exp)
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
