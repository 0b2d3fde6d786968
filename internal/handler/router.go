package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	courtHandler *api.CourtHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, courtHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.LogServerErrors())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, courtHandler *api.CourtHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	courts := engine.Group("/canchas")
	{
		addRoutes(courts, []route{
			{Method: http.MethodPost, Path: "/", Handler: courtHandler.Create},
			{Method: http.MethodGet, Path: "/", Handler: courtHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: courtHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: courtHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: courtHandler.Delete},
			{Method: http.MethodGet, Path: "/:id/reservas", Handler: courtHandler.ListReservations},
		})
	}

	reservations := engine.Group("/reservaciones")
	{
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "/", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/por_cancha_y_fecha/", Handler: reservationHandler.ListByCourtAndDate},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
		})
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
