package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppTitle is shown in the title of every page
const AppTitle = "Contact Web"

// DemoHandler defines the routes showing plain responses, path parameters and templates
type DemoHandler interface {
	Index(ctx *gin.Context)
	Hello(ctx *gin.Context)
	ShowName(ctx *gin.Context)
}

type demoHandler struct {
	urls *URLBuilder
}

// NewDemoHandler creates a new DemoHandler
func NewDemoHandler(urls *URLBuilder) DemoHandler {
	return &demoHandler{urls: urls}
}

// Index handles GET /
func (handler *demoHandler) Index(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello, %s!", AppTitle)
}

// Hello handles GET /hello/:name
func (handler *demoHandler) Hello(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello, %s!", ctx.Param("name"))
}

// ShowName handles GET /name/:name by rendering index.html
func (handler *demoHandler) ShowName(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)
	rc.HTML(http.StatusOK, "index.html", gin.H{
		"Title": AppTitle,
		"Name":  ctx.Param("name"),
	})
}
