package bootstrap

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursecatalog/internal/app/controllers"
	appRoutes "github.com/yigit/coursecatalog/internal/app/routes"
	appServices "github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/config"
	appMiddleware "github.com/yigit/coursecatalog/internal/middleware"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
	"github.com/yigit/coursecatalog/internal/pkg/whatsapp"
	"github.com/yigit/coursecatalog/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog          *catalog.Catalog
	CourseService    appServices.CourseService
	ResultsService   appServices.ResultsService
	InstituteService appServices.InstituteService
	EnquiryService   appServices.EnquiryService
	BlogService      appServices.BlogService
	Controllers      appRoutes.Controllers
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(cfg.LoggerConfig())

	lgr := logger.WithFields(map[string]interface{}{
		"brand": cfg.Site.Brand,
		"mode":  cfg.Server.Mode,
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadCatalog loads the catalog selected by the site configuration.
func LoadCatalog(cfg *config.Config, lgr zerolog.Logger) (*catalog.Catalog, error) {
	return seed.Load(cfg.Brand(), cfg.Site.CatalogPath, lgr)
}

// BuildDependencies initializes services and controllers over a loaded catalog.
func BuildDependencies(cfg *config.Config, cat *catalog.Catalog, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Catalog: cat, Logger: lgr}

	links := whatsapp.NewLinkService(whatsapp.Config{
		Number:        cat.Institute.WhatsApp,
		InstituteName: cat.Institute.Name,
	}, lgr)

	deps.CourseService = appServices.NewCourseService(cat.Registry, lgr)
	deps.ResultsService = appServices.NewResultsService(cat.Toppers)
	deps.InstituteService = appServices.NewInstituteService(cat.Institute, cat.EnquiryOptions)
	deps.EnquiryService = appServices.NewEnquiryService(cat.Registry, links, lgr)
	deps.BlogService = appServices.NewBlogService(cat.Posts)

	deps.Controllers = appRoutes.Controllers{
		Course:    appControllers.NewCourseController(deps.CourseService),
		Results:   appControllers.NewResultsController(deps.ResultsService),
		Institute: appControllers.NewInstituteController(deps.InstituteService, cat.Registry.Len()),
		Enquiry:   appControllers.NewEnquiryController(deps.EnquiryService),
		Blog:      appControllers.NewBlogController(deps.BlogService),
		Page: appControllers.NewPageController(
			deps.CourseService,
			deps.ResultsService,
			deps.InstituteService,
			deps.EnquiryService,
			deps.BlogService,
			cfg.Site.NavLimit,
		),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch cfg.Server.Mode {
	case config.ModeProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.ModeTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, err
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
