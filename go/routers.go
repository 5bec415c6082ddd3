// Package afterschoolserver exposes the after-school classes HTTP API.
package afterschoolserver

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	lessonports "github.com/Apurer/afterschool-api/internal/domains/lessons/ports"
	storeports "github.com/Apurer/afterschool-api/internal/domains/store/ports"
	apierrors "github.com/Apurer/afterschool-api/internal/shared/errors"
)

// Banner is the plain text body served at the root path.
const Banner = "After School Classes API is running..."

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Options configures the router.
type Options struct {
	ServiceName string
	UploadsDir  string
	Logger      *slog.Logger
}

// Router holds the handler dependencies. Nothing in it is mutated after construction.
type Router struct {
	lessons   lessonports.Service
	orders    storeports.OrderOrchestrator
	responder *apierrors.Responder
	logger    *slog.Logger
}

// NewRouter returns a new gin engine with middleware, API routes and the uploads mount.
func NewRouter(lessons lessonports.Service, orders storeports.OrderOrchestrator, opts Options) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	if opts.ServiceName != "" {
		engine.Use(otelgin.Middleware(opts.ServiceName))
	}
	return NewRouterWithGinEngine(engine, lessons, orders, opts)
}

// NewRouterWithGinEngine registers middleware and routes on an existing engine.
func NewRouterWithGinEngine(engine *gin.Engine, lessons lessonports.Service, orders storeports.OrderOrchestrator, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		lessons:   lessons,
		orders:    orders,
		responder: apierrors.NewResponder(logger),
		logger:    logger,
	}
	engine.Use(RequestLogger(logger), CORS())
	for _, route := range r.routes() {
		engine.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	uploads := opts.UploadsDir
	if uploads == "" {
		uploads = "uploads"
	}
	engine.Static("/uploads", uploads)
	return engine
}

func (r *Router) routes() []Route {
	return []Route{
		{Name: "Index", Method: http.MethodGet, Pattern: "/", HandlerFunc: r.Index},
		{Name: "GetLessons", Method: http.MethodGet, Pattern: "/lessons", HandlerFunc: r.GetLessons},
		{Name: "SearchLessons", Method: http.MethodGet, Pattern: "/search", HandlerFunc: r.SearchLessons},
		{Name: "PlaceOrder", Method: http.MethodPost, Pattern: "/order", HandlerFunc: r.PlaceOrder},
		{Name: "UpdateLesson", Method: http.MethodPut, Pattern: "/update/:id", HandlerFunc: r.UpdateLesson},
	}
}

// Get /
// Reports that the API is running
func (r *Router) Index(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}
