package web

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/contact-web/internal/domain/contact"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Cookie written when the contact form is displayed
const (
	DemoCookieName  = "contact-web-key"
	DemoCookieValue = "contact-web-value"
)

// DemoSessionUsername is stored in the session when the contact form is displayed
const DemoSessionUsername = "AK"

// ContactHandler defines the contact form workflow
type ContactHandler interface {
	Display(ctx *gin.Context)
	Submit(ctx *gin.Context)
	Complete(ctx *gin.Context)
}

type contactHandler struct {
	contactService contact.ContactService
	urls           *URLBuilder
	logger         logger.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService contact.ContactService, urls *URLBuilder, logger logger.Logger) ContactHandler {
	return &contactHandler{
		contactService: contactService,
		urls:           urls,
		logger:         logger,
	}
}

// Display handles GET /contact. It never sends mail.
func (handler *contactHandler) Display(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)

	ctx.SetCookie(DemoCookieName, DemoCookieValue, 0, "/", "", false, true)
	rc.Set(SessionUsernameKey, DemoSessionUsername)

	rc.HTML(http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
}

// Submit handles POST /contact/complete. Every failed check is flashed and the
// client is sent back to the form; a valid submission triggers the confirmation mail.
func (handler *contactHandler) Submit(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)

	var submission contact.Submission
	if err := ctx.ShouldBind(&submission); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	result, err := handler.contactService.Submit(ctx.Request.Context(), &submission)
	if err != nil {
		rc.Fail(fmt.Errorf("failed to submit contact form: %w", err))
		return
	}

	if !result.Valid() {
		for _, msg := range result.Messages() {
			rc.Flash(msg)
		}
		rc.RedirectTo(RouteContact, nil)
		return
	}

	rc.Flash(contact.MsgConfirmationSent)
	rc.RedirectTo(RouteContactComplete, nil)
}

// Complete handles GET /contact/complete
func (handler *contactHandler) Complete(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)
	rc.HTML(http.StatusOK, "contact_complete.html", gin.H{"Title": "Inquiry received"})
}
