package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MGTheTrain/contact-web/internal/domain/contact"
	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// CrudBasePath is the prefix the CRUD sub-application is mounted under
const CrudBasePath = "/crud"

// NewEngine builds the gin engine with logging, error handling, the cookie session
// store and the HTML templates. Routes are added by SetupRoutes.
func NewEngine(cfg *config.AppConfig, log logger.Logger) (*gin.Engine, *URLBuilder, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("config is required")
	}
	if cfg.SecretKey == "" {
		return nil, nil, fmt.Errorf("secret key is required for the session store")
	}

	urls := NewURLBuilder()

	tmpl, err := parseTemplates(urls)
	if err != nil {
		return nil, nil, err
	}

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log), ErrorHandler(log))
	r.Use(sessions.Sessions(SessionName, store))
	r.SetHTMLTemplate(tmpl)

	return r, urls, nil
}

// SetupRoutes registers the demo routes, the contact workflow, the static assets
// and the CRUD sub-application.
func SetupRoutes(r *gin.Engine,
	urls *URLBuilder,
	contactService contact.ContactService,
	userService users.UserService,
	log logger.Logger) error {

	static, err := staticFiles()
	if err != nil {
		return err
	}
	r.StaticFS("/static", http.FS(static))
	urls.Register(RouteStatic, http.MethodGet, "/static/*filepath")

	root := &r.RouterGroup

	// Demo routes
	demoHandler := NewDemoHandler(urls)
	handle(urls, root, http.MethodGet, RouteIndex, "/", demoHandler.Index)
	handle(urls, root, http.MethodGet, RouteHello, "/hello/:name", demoHandler.Hello)
	handle(urls, root, http.MethodGet, RouteShowName, "/name/:name", demoHandler.ShowName)

	// Contact routes
	contactHandler := NewContactHandler(contactService, urls, log)
	handle(urls, root, http.MethodGet, RouteContact, "/contact", contactHandler.Display)
	handle(urls, root, http.MethodPost, RouteContactComplete, "/contact/complete", contactHandler.Submit)
	root.GET("/contact/complete", contactHandler.Complete)

	// CRUD sub-application
	crud := r.Group(CrudBasePath)
	crudHandler := NewCrudHandler(userService, urls, log)
	handle(urls, crud, http.MethodGet, RouteCrudIndex, "/", crudHandler.Index)
	handle(urls, crud, http.MethodGet, RouteCrudUsersNew, "/users/new", crudHandler.New)
	handle(urls, crud, http.MethodPost, RouteCrudUsersCreate, "/users/new", crudHandler.Create)
	handle(urls, crud, http.MethodGet, RouteCrudUsersShow, "/users/:id", crudHandler.Show)
	handle(urls, crud, http.MethodPost, RouteCrudUsersDelete, "/users/:id/delete", crudHandler.Delete)

	return nil
}

// RegisterDebugRoutes exposes the runtime profiler under /debug/pprof
func RegisterDebugRoutes(r *gin.Engine) {
	pprof.Register(r)
}

func handle(urls *URLBuilder, group *gin.RouterGroup, method, name, relativePath string, handlers ...gin.HandlerFunc) {
	group.Handle(method, relativePath, handlers...)
	urls.Register(name, method, strings.TrimSuffix(group.BasePath(), "/")+relativePath)
}
