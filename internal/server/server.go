// Package server 组装仓储、应用服务与 HTTP 路由
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wyfcoding/poseidon/assets"
	authapp "github.com/wyfcoding/poseidon/internal/auth/application"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	authmemory "github.com/wyfcoding/poseidon/internal/auth/infrastructure/persistence/memory"
	authredis "github.com/wyfcoding/poseidon/internal/auth/infrastructure/persistence/redis"
	authhttp "github.com/wyfcoding/poseidon/internal/auth/interfaces/http"
	bidlistapp "github.com/wyfcoding/poseidon/internal/bidlist/application"
	bidlistmysql "github.com/wyfcoding/poseidon/internal/bidlist/infrastructure/persistence/mysql"
	bidlisthttp "github.com/wyfcoding/poseidon/internal/bidlist/interfaces/http"
	curvepointapp "github.com/wyfcoding/poseidon/internal/curvepoint/application"
	curvepointmysql "github.com/wyfcoding/poseidon/internal/curvepoint/infrastructure/persistence/mysql"
	curvepointhttp "github.com/wyfcoding/poseidon/internal/curvepoint/interfaces/http"
	homehttp "github.com/wyfcoding/poseidon/internal/home/interfaces/http"
	ratingapp "github.com/wyfcoding/poseidon/internal/rating/application"
	ratingmysql "github.com/wyfcoding/poseidon/internal/rating/infrastructure/persistence/mysql"
	ratinghttp "github.com/wyfcoding/poseidon/internal/rating/interfaces/http"
	rulenameapp "github.com/wyfcoding/poseidon/internal/rulename/application"
	rulenamemysql "github.com/wyfcoding/poseidon/internal/rulename/infrastructure/persistence/mysql"
	rulenamehttp "github.com/wyfcoding/poseidon/internal/rulename/interfaces/http"
	tradeapp "github.com/wyfcoding/poseidon/internal/trade/application"
	trademysql "github.com/wyfcoding/poseidon/internal/trade/infrastructure/persistence/mysql"
	tradehttp "github.com/wyfcoding/poseidon/internal/trade/interfaces/http"
	userapp "github.com/wyfcoding/poseidon/internal/user/application"
	usermysql "github.com/wyfcoding/poseidon/internal/user/infrastructure/persistence/mysql"
	userhttp "github.com/wyfcoding/poseidon/internal/user/interfaces/http"
	"github.com/wyfcoding/poseidon/internal/web"
	"github.com/wyfcoding/poseidon/pkg/config"
	"github.com/wyfcoding/poseidon/pkg/logger"
	"github.com/wyfcoding/poseidon/pkg/metrics"
	"github.com/wyfcoding/poseidon/pkg/middleware"
	"github.com/wyfcoding/poseidon/pkg/mq"
	"github.com/wyfcoding/poseidon/pkg/ratelimit"
)

// Deps 外部依赖，Redis 为空时会话与限流使用进程内实现
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher mq.Publisher
	Metrics   *metrics.Metrics
}

// App 组装完成的应用
type App struct {
	Engine   *gin.Engine
	Auth     *authapp.AuthService
	Users    *userapp.UserService
	Sessions authdomain.SessionRepository
	Limiter  ratelimit.RateLimiter
	Hasher   authdomain.PasswordHasher

	BidLists    *bidlistapp.BidListService
	CurvePoints *curvepointapp.CurvePointService
	Ratings     *ratingapp.RatingService
	RuleNames   *rulenameapp.RuleNameService
	Trades      *tradeapp.TradeService
}

// New 创建服务并注册全部路由
func New(deps Deps) (*App, error) {
	cfg := deps.Config
	publisher := deps.Publisher
	if publisher == nil {
		publisher = mq.LogPublisher{}
	}

	var sessions authdomain.SessionRepository
	var limiter ratelimit.RateLimiter
	if cfg.Security.SessionStore == "redis" && deps.Redis != nil {
		sessions = authredis.NewSessionRedisRepository(deps.Redis)
	} else {
		sessions = authmemory.NewSessionRepository()
	}
	if deps.Redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(deps.Redis)
	} else {
		limiter = ratelimit.NewLocalRateLimiter()
	}

	hasher := authapp.NewBcryptHasher(cfg.Security.BcryptCost)
	userRepo := usermysql.NewUserRepository(deps.DB)

	app := &App{
		Auth:        authapp.NewAuthService(userRepo, sessions, hasher, publisher, deps.Metrics, cfg.Security.SessionDuration()),
		Users:       userapp.NewUserService(userRepo, hasher, publisher, deps.Metrics),
		Sessions:    sessions,
		Limiter:     limiter,
		Hasher:      hasher,
		BidLists:    bidlistapp.NewBidListService(bidlistmysql.NewBidListRepository(deps.DB), publisher, deps.Metrics),
		CurvePoints: curvepointapp.NewCurvePointService(curvepointmysql.NewCurvePointRepository(deps.DB), publisher, deps.Metrics),
		Ratings:     ratingapp.NewRatingService(ratingmysql.NewRatingRepository(deps.DB), publisher, deps.Metrics),
		RuleNames:   rulenameapp.NewRuleNameService(rulenamemysql.NewRuleNameRepository(deps.DB), publisher, deps.Metrics),
		Trades:      tradeapp.NewTradeService(trademysql.NewTradeRepository(deps.DB), publisher, deps.Metrics),
	}

	engine, err := app.router(cfg, deps.Metrics, limiter)
	if err != nil {
		return nil, err
	}
	app.Engine = engine
	return app, nil
}

func (a *App) router(cfg *config.Config, m *metrics.Metrics, limiter ratelimit.RateLimiter) (*gin.Engine, error) {
	web.RegisterValidators()

	tmpl, err := web.ParseTemplates(assets.Templates(), assets.TemplatePatterns...)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.GinRecoveryMiddleware(web.ServerError))
	r.Use(middleware.GinLoggingMiddleware())
	if m != nil {
		r.Use(m.GinMiddleware())
	}
	cookie := authhttp.CookieConfig{
		Name:   cfg.Security.SessionCookie,
		Secure: cfg.Security.SecureCookie,
	}
	r.Use(authhttp.SessionMiddleware(a.Auth, cookie))
	r.Use(authhttp.AccessMiddleware(authdomain.NewPolicy(cfg.Security.PublicPaths, cfg.Security.AdminPaths)))

	r.StaticFS("/css", http.FS(assets.CSS()))
	if m != nil && cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, m.Handler())
	}

	var loginGuard []gin.HandlerFunc
	if n := cfg.Security.LoginAttemptsPerMinute; n > 0 {
		loginGuard = append(loginGuard, middleware.RateLimitMiddleware(limiter, "login", ratelimit.PerMinute(n), func(c *gin.Context) {
			m.RecordLogin("throttled")
			authhttp.LoginRejected(c)
		}))
	}

	authhttp.NewHandler(a.Auth, cookie, cfg.Security.SuccessURL).RegisterRoutes(r, loginGuard...)
	homehttp.NewHandler().RegisterRoutes(r)

	users := userhttp.NewHandler(a.Users)
	users.RegisterRoutes(r)
	r.GET("/app/secure/article-details", web.Authed(users.ArticleDetails))

	bidlisthttp.NewHandler(a.BidLists).RegisterRoutes(r)
	curvepointhttp.NewHandler(a.CurvePoints).RegisterRoutes(r)
	ratinghttp.NewHandler(a.Ratings).RegisterRoutes(r)
	rulenamehttp.NewHandler(a.RuleNames).RegisterRoutes(r)
	tradehttp.NewHandler(a.Trades).RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		web.NotFound(c, "Page not found: "+c.Request.URL.Path)
	})
	return r, nil
}

// Bootstrap 按配置创建初始管理员
func (a *App) Bootstrap(ctx context.Context, cfg config.BootstrapConfig) error {
	created, err := a.Users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminFullname)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if created {
		logger.Info(ctx, "bootstrap admin created", "username", cfg.AdminUsername)
	}
	return nil
}
