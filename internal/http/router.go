package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guiabeleza/salao/internal/access"
	"github.com/guiabeleza/salao/internal/billing"
	"github.com/guiabeleza/salao/internal/catalog"
	"github.com/guiabeleza/salao/internal/cep"
	"github.com/guiabeleza/salao/internal/config"
	"github.com/guiabeleza/salao/internal/geo"
	httpmiddleware "github.com/guiabeleza/salao/internal/http/middleware"
	"github.com/guiabeleza/salao/internal/notify"
	"github.com/guiabeleza/salao/internal/repo"
	"github.com/guiabeleza/salao/internal/salon"
	"github.com/guiabeleza/salao/internal/service"
	"github.com/guiabeleza/salao/internal/storage"
)

// SalonDirectory é a visão que os handlers têm do serviço de salões.
type SalonDirectory interface {
	Resolve(ctx context.Context, slug string) (*salon.Salon, error)
	Nearby(ctx context.Context, user *geo.Point, radius geo.Radius) ([]salon.Nearby, error)
	Get(ctx context.Context, id uuid.UUID) (*salon.Salon, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*salon.Salon, error)
	List(ctx context.Context, all bool) ([]salon.Salon, error)
	Create(ctx context.Context, input salon.CreateSalonInput) (*salon.Salon, error)
	Update(ctx context.Context, input salon.UpdateSalonInput) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error
	UpdatePlan(ctx context.Context, id uuid.UUID, plan string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccessWorkflow é a visão dos handlers sobre o fluxo de aprovação.
type AccessWorkflow interface {
	Submit(ctx context.Context, input access.CreateRequestInput) (*access.Request, error)
	Get(ctx context.Context, id uuid.UUID) (*access.Request, error)
	List(ctx context.Context, status string) ([]access.Request, error)
	Approve(ctx context.Context, id uuid.UUID, plan string, approver uuid.UUID) (*salon.Salon, error)
	Reject(ctx context.Context, id uuid.UUID, approver uuid.UUID) error
}

// MenuBuilder compõe o cardápio público de um salão.
type MenuBuilder interface {
	BuildMenu(ctx context.Context, sal *salon.Salon) (*catalog.Menu, error)
}

// CatalogStore cobre o CRUD de catálogo usado pelas rotas admin e owner.
type CatalogStore interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	CreateCategory(ctx context.Context, name string, sortOrder int) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, c catalog.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListTreatments(ctx context.Context, onlyActive bool) ([]catalog.Treatment, error)
	CreateTreatment(ctx context.Context, t catalog.Treatment) (*catalog.Treatment, error)
	UpdateTreatment(ctx context.Context, t catalog.Treatment) error
	DeleteTreatment(ctx context.Context, id uuid.UUID) error
	ListOverrides(ctx context.Context, salonID uuid.UUID) ([]catalog.SalonTreatment, error)
	UpsertOverride(ctx context.Context, o catalog.SalonTreatment) error
	DeleteOverride(ctx context.Context, salonID, treatmentID uuid.UUID) error
	ListBanners(ctx context.Context, salonID uuid.UUID, onlyActive bool) ([]catalog.Banner, error)
	CreateBanner(ctx context.Context, b catalog.Banner) (*catalog.Banner, error)
	UpdateBanner(ctx context.Context, b catalog.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error
}

// WebhookProcessor processa webhooks de pagamento assinados.
type WebhookProcessor interface {
	Process(ctx context.Context, body []byte, signature string) error
}

// CEPClient resolve um CEP em endereço.
type CEPClient interface {
	Lookup(ctx context.Context, code string) (*cep.Address, error)
}

type Handler struct {
	cfg           *config.Config
	pool          *pgxpool.Pool
	redis         *redis.Client
	queries       *repo.Queries
	authService   *service.AuthService
	salons        SalonDirectory
	accessFlow    AccessWorkflow
	menu          MenuBuilder
	catalog       CatalogStore
	webhook       WebhookProcessor
	cep           CEPClient
	storage       storage.Uploader
	webauthn      *webauthn.WebAuthn
	publicLimiter *httpmiddleware.RateLimiter
	authLimiter   *httpmiddleware.RateLimiter
	devCookies    bool
}

const (
	passkeyRegisterSessionPrefix = "webauthn:register:"
	passkeyLoginSessionPrefix    = "webauthn:login:"
	passkeySessionTTL            = 5 * time.Minute
)

// NewRouter devolve roteador configurado.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, authService *service.AuthService) (http.Handler, error) {
	devCookies := false
	for _, origin := range cfg.AllowOrigins {
		if strings.Contains(origin, "localhost") {
			devCookies = true
			break
		}
	}

	wa, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.WebAuthnRPName,
		RPID:          cfg.WebAuthnRPID,
		RPOrigins:     []string{cfg.WebAuthnRPOrigin},
	})
	if err != nil {
		return nil, fmt.Errorf("webauthn: %w", err)
	}

	salonRepo := salon.NewRepository(pool)
	salonService := salon.NewService(salonRepo)

	slack := notify.NewSlackNotifier(cfg.Notify.SlackWebhookURL)
	mailer := notify.NewMailer(cfg.Notify.ResendAPIKey, cfg.Notify.EmailFrom)
	notifyLogger := log.With().Str("component", "notify").Logger()
	notifier := notify.NewService(slack, mailer, cfg.PublicBaseURL, notifyLogger)

	accessRepo := access.NewRepository(pool)
	accessLogger := log.With().Str("component", "access").Logger()
	accessService := access.NewService(accessRepo, notifier, accessLogger)

	catalogRepo := catalog.NewRepository(pool)
	catalogService := catalog.NewService(catalogRepo)

	billingRepo := billing.NewRepository(pool)
	billingLogger := log.With().Str("component", "billing").Logger()
	billingService := billing.NewService(billingRepo, cfg.KiwifySecret, billingLogger)

	var uploader storage.Uploader = storage.NoopUploader{}
	switch cfg.Storage.Provider {
	case "", "noop":
		// mantém uploader padrão
	case "s3", "r2", "cloudflare-r2":
		uploader, err = storage.NewS3Uploader(storage.S3Config{
			Endpoint:     cfg.Storage.S3Endpoint,
			Region:       cfg.Storage.S3Region,
			Bucket:       cfg.Storage.S3Bucket,
			AccessKey:    cfg.Storage.S3AccessKey,
			SecretKey:    cfg.Storage.S3SecretKey,
			PublicDomain: cfg.Storage.S3PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	default:
		return nil, fmt.Errorf("storage: provedor %s não suportado", cfg.Storage.Provider)
	}

	h := &Handler{
		cfg:           cfg,
		pool:          pool,
		redis:         redisClient,
		queries:       repo.New(pool),
		authService:   authService,
		salons:        salonService,
		accessFlow:    accessService,
		menu:          catalogService,
		catalog:       catalogRepo,
		webhook:       billingService,
		cep:           cep.NewClient(),
		storage:       uploader,
		webauthn:      wa,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		authLimiter:   httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst),
		devCookies:    devCookies,
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Group(func(public chi.Router) {
		public.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

		public.Get("/health", h.Health)
		public.Get("/ready", h.Ready)

		public.Get("/salons", h.ListSalons)
		public.Get("/menu/{slug}", h.Menu)
		public.Get("/cep/{code}", h.LookupCEP)

		public.Post("/webhooks/kiwify", h.KiwifyWebhook)

		public.Route("/auth", func(auth chi.Router) {
			auth.Post("/signup", h.Signup)
			auth.Post("/login", h.Login)
			auth.Post("/passkey/login/start", h.PasskeyLoginStart)
			auth.Post("/passkey/login/finish", h.PasskeyLoginFinish)
			auth.Post("/refresh", h.Refresh)
			auth.Post("/logout", h.Logout)
		})
	})

	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.Auth(authService.JWT()))
		private.Use(httpmiddleware.UserRateLimit(h.authLimiter))

		private.Get("/me", h.Me)
		private.Route("/auth/passkey/register", func(pk chi.Router) {
			pk.Post("/start", h.PasskeyRegisterStart)
			pk.Post("/finish", h.PasskeyRegisterFinish)
		})

		private.Group(func(owner chi.Router) {
			owner.Use(httpmiddleware.RequireOwner)
			owner.Route("/owner", func(o chi.Router) {
				o.Get("/salon", h.OwnerGetSalon)
				o.Post("/salon", h.OwnerCreateSalon)
				o.Put("/salon", h.OwnerUpdateSalon)
				o.Post("/salon/photo", h.OwnerUploadPhoto)
				o.Get("/treatments", h.OwnerListTreatments)
				o.Put("/treatments/{treatmentID}", h.OwnerUpsertTreatment)
				o.Delete("/treatments/{treatmentID}", h.OwnerDeleteTreatment)
			})
		})

		private.Group(func(admin chi.Router) {
			admin.Use(httpmiddleware.RequireAdmin)
			admin.Route("/admin", func(a chi.Router) {
				a.Get("/requests", h.ListAccessRequests)
				a.Post("/requests/{id}/approve", h.ApproveAccessRequest)
				a.Post("/requests/{id}/reject", h.RejectAccessRequest)

				a.Get("/profiles", h.ListProfiles)
				a.Patch("/profiles/{id}", h.UpdateProfileRole)
				a.Delete("/profiles/{id}", h.DeleteProfile)

				a.Get("/salons", h.AdminListSalons)
				a.Patch("/salons/{id}", h.AdminUpdateSalon)
				a.Delete("/salons/{id}", h.AdminDeleteSalon)

				a.Get("/treatments", h.AdminListTreatments)
				a.Post("/treatments", h.AdminCreateTreatment)
				a.Put("/treatments/{id}", h.AdminUpdateTreatment)
				a.Delete("/treatments/{id}", h.AdminDeleteTreatment)

				a.Get("/categories", h.AdminListCategories)
				a.Post("/categories", h.AdminCreateCategory)
				a.Put("/categories/{id}", h.AdminUpdateCategory)
				a.Delete("/categories/{id}", h.AdminDeleteCategory)

				a.Get("/salons/{id}/banners", h.AdminListBanners)
				a.Post("/salons/{id}/banners", h.AdminCreateBanner)
				a.Put("/banners/{id}", h.AdminUpdateBanner)
				a.Delete("/banners/{id}", h.AdminDeleteBanner)
			})
		})
	})

	return r, nil
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida conexões com Postgres e Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbErr := h.pool.Ping(ctx)
	redisErr := h.redis.Ping(ctx).Err()

	if dbErr != nil || redisErr != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "dependências indisponíveis", map[string]any{
			"db":    errorString(dbErr),
			"redis": errorString(redisErr),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (h *Handler) subjectUUID(r *http.Request) (uuid.UUID, error) {
	subjectStr := httpmiddleware.GetSubject(r.Context())
	return uuid.Parse(strings.TrimSpace(subjectStr))
}
