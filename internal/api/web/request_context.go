package web

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session settings
const (
	SessionName        = "contact-web-session"
	SessionUsernameKey = "username"
)

// RequestContext carries the session of one request and the flash messages the
// handler queued. Queued messages are merged into the session right before the
// response is written by Redirect or HTML.
type RequestContext struct {
	c        *gin.Context
	session  sessions.Session
	urls     *URLBuilder
	outgoing []string
}

// NewRequestContext wraps the session attached by the sessions middleware
func NewRequestContext(c *gin.Context, urls *URLBuilder) *RequestContext {
	return &RequestContext{
		c:       c,
		session: sessions.Default(c),
		urls:    urls,
	}
}

// Flash queues a message for the next rendered page.
func (rc *RequestContext) Flash(message string) {
	rc.outgoing = append(rc.outgoing, message)
}

// Set stores a session value.
func (rc *RequestContext) Set(key string, value interface{}) {
	rc.session.Set(key, value)
}

// Get returns a session value, or nil.
func (rc *RequestContext) Get(key string) interface{} {
	return rc.session.Get(key)
}

// Redirect saves the session with the queued messages and redirects with 302.
func (rc *RequestContext) Redirect(location string) {
	for _, msg := range rc.outgoing {
		rc.session.AddFlash(msg)
	}
	rc.outgoing = nil

	if err := rc.session.Save(); err != nil {
		rc.fail(fmt.Errorf("failed to save session: %w", err))
		return
	}

	rc.c.Redirect(http.StatusFound, location)
}

// RedirectTo redirects to the named route.
func (rc *RequestContext) RedirectTo(name string, params map[string]string) {
	location, err := rc.urls.URLFor(name, params)
	if err != nil {
		rc.fail(err)
		return
	}
	rc.Redirect(location)
}

// HTML renders a template. Flash messages stored in the session and those queued
// during this request are consumed and exposed to the template as .Messages.
func (rc *RequestContext) HTML(code int, name string, data gin.H) {
	var messages []string
	for _, f := range rc.session.Flashes() {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	messages = append(messages, rc.outgoing...)
	rc.outgoing = nil

	if err := rc.session.Save(); err != nil {
		rc.fail(fmt.Errorf("failed to save session: %w", err))
		return
	}

	if data == nil {
		data = gin.H{}
	}
	data["Messages"] = messages
	rc.c.HTML(code, name, data)
}

// Fail attaches err to the request and aborts it. The error middleware answers with 500.
func (rc *RequestContext) Fail(err error) {
	rc.fail(err)
}

func (rc *RequestContext) fail(err error) {
	_ = rc.c.Error(err)
	rc.c.Abort()
}
