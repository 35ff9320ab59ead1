package app

import (
	"github.com/gin-gonic/gin"

	"github.com/solvex-capital/marketing-core/internal/middleware"
	"github.com/solvex-capital/marketing-core/internal/modules/content/blog"
	"github.com/solvex-capital/marketing-core/internal/modules/content/card"
	"github.com/solvex-capital/marketing-core/internal/modules/content/footer"
	"github.com/solvex-capital/marketing-core/internal/modules/content/landing"
	"github.com/solvex-capital/marketing-core/internal/modules/content/pagecontent"
	"github.com/solvex-capital/marketing-core/internal/modules/system/health"
	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// registerRoutes mounts every module. All routes share the general rate limit
// and the audit trail; write endpoints add their own tighter buckets inside
// each handler.
func (a *App) registerRoutes() {
	root := a.router.Group("")
	root.Use(middleware.RateLimit(a.rdb, middleware.RateLimitGeneral))
	root.Use(middleware.Audit(a.logger.Named("audit")))

	health.RegisterRoutes(root, a.db, a.cfg.Env)

	blogSvc := blog.NewService(a.db, a.logger.Named("blog"))
	blog.NewHandler(blogSvc).RegisterRoutes(root,
		middleware.RateLimit(a.rdb, middleware.RateLimitBlogWrite),
		middleware.RateLimit(a.rdb, middleware.RateLimitBlogTypeWrite),
	)

	footerSvc := footer.NewService(a.db, a.logger.Named("footer"))
	footer.NewHandler(footerSvc).RegisterRoutes(root)

	cardSvc := card.NewService(a.db, a.logger.Named("card"))
	card.NewHandler(cardSvc).RegisterRoutes(root,
		middleware.RateLimit(a.rdb, middleware.RateLimitPageContent),
	)

	landingSvc := landing.NewService(a.db, a.logger.Named("landing"))
	landing.NewHandler(landingSvc).RegisterRoutes(root,
		middleware.RateLimit(a.rdb, middleware.RateLimitLanding),
	)

	pageSvc := pagecontent.NewService(a.db, a.logger.Named("pagecontent"))
	pagecontent.NewHandler(pageSvc).RegisterRoutes(root,
		middleware.RateLimit(a.rdb, middleware.RateLimitPageContent),
	)

	a.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
}
