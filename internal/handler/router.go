package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"membership-portal/internal/domain/member"
	"membership-portal/internal/handler/api"
	"membership-portal/internal/handler/middleware"
	"membership-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	memberHandler *api.MemberHandler,
	duesHandler *api.DuesHandler,
	campaignHandler *api.CampaignHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, memberHandler, duesHandler, campaignHandler, redemptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	memberHandler *api.MemberHandler,
	duesHandler *api.DuesHandler,
	campaignHandler *api.CampaignHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRoleAtLeast(member.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		members := apiGroup.Group("/members")
		members.Use(authMiddleware.RequireAuth())
		{
			addRoutes(members, []route{
				{Method: http.MethodGet, Path: "", Handler: memberHandler.ListApproved},
				{Method: http.MethodGet, Path: "/:id", Handler: memberHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: memberHandler.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/pending", Handler: memberHandler.ListPending, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id/approve", Handler: memberHandler.Approve, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		dues := apiGroup.Group("/dues")
		dues.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dues, []route{
				{Method: http.MethodGet, Path: "", Handler: duesHandler.ListOwn},
				{Method: http.MethodGet, Path: "/all", Handler: duesHandler.ListAll, Mw: []gin.HandlerFunc{adminOnly}},
				// ListByMember enforces self-or-admin itself; :id here is a member id,
				// on /pay and /unpay it is a dues record id.
				{Method: http.MethodGet, Path: "/:id", Handler: duesHandler.ListByMember},
				{Method: http.MethodPut, Path: "/:id/pay", Handler: duesHandler.Pay, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id/unpay", Handler: duesHandler.Unpay, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		campaigns := apiGroup.Group("/campaigns")
		campaigns.Use(authMiddleware.RequireAuth())
		{
			addRoutes(campaigns, []route{
				{Method: http.MethodGet, Path: "", Handler: campaignHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: campaignHandler.Get},
				{Method: http.MethodPost, Path: "/:id/generate-qr", Handler: redemptionHandler.GenerateQR},
				{Method: http.MethodPost, Path: "", Handler: campaignHandler.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: campaignHandler.Update, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: campaignHandler.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		// verify-qr is called by partner scanning devices that hold no member
		// token; validity travels in the body, never in the status code.
		apiGroup.GET("/verify-qr/:qr_token", redemptionHandler.VerifyQR)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
