package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Flash messages of the CRUD sub-application
const (
	MsgUserNameInvalid  = "User name is required and must be at most 255 characters"
	MsgUserEmailInvalid = "Please a correct email address"
	MsgUserCreated      = "User was created"
	MsgUserDeleted      = "User was deleted"
	MsgUserNotFound     = "User not found"
)

// CreateUserRequest is the form posted to create a user
type CreateUserRequest struct {
	Username string `form:"username" binding:"required,max=255"`
	Email    string `form:"email" binding:"required,email,max=255"`
}

// CrudHandler defines the CRUD sub-application routes
type CrudHandler interface {
	Index(ctx *gin.Context)
	New(ctx *gin.Context)
	Create(ctx *gin.Context)
	Show(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type crudHandler struct {
	userService users.UserService
	urls        *URLBuilder
	logger      logger.Logger
}

// NewCrudHandler creates a new CrudHandler
func NewCrudHandler(userService users.UserService, urls *URLBuilder, logger logger.Logger) CrudHandler {
	return &crudHandler{
		userService: userService,
		urls:        urls,
		logger:      logger,
	}
}

// Index handles GET /crud/
func (handler *crudHandler) Index(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)

	list, err := handler.userService.List(ctx.Request.Context(), users.NewUserQuery())
	if err != nil {
		rc.Fail(err)
		return
	}

	rc.HTML(http.StatusOK, "crud_index.html", gin.H{
		"Title": "CRUD",
		"Users": list,
	})
}

// New handles GET /crud/users/new
func (handler *crudHandler) New(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)
	rc.HTML(http.StatusOK, "crud_user_form.html", gin.H{"Title": "New user"})
}

// Create handles POST /crud/users/new
func (handler *crudHandler) Create(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)

	var request CreateUserRequest
	if err := ctx.ShouldBind(&request); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
			ctx.AbortWithStatus(http.StatusBadRequest)
			return
		}
		for _, msg := range createUserMessages(validationErrors) {
			rc.Flash(msg)
		}
		rc.RedirectTo(RouteCrudUsersNew, nil)
		return
	}

	user, err := handler.userService.Create(ctx.Request.Context(), request.Username, request.Email)
	if err != nil {
		rc.Fail(err)
		return
	}

	handler.logger.Info("Created user ", user.ID)
	rc.Flash(MsgUserCreated)
	rc.RedirectTo(RouteCrudIndex, nil)
}

// Show handles GET /crud/users/:id
func (handler *crudHandler) Show(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)
	userID := ctx.Param("id")

	user, err := handler.userService.GetByID(ctx.Request.Context(), userID)
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		rc.Flash(MsgUserNotFound)
		rc.RedirectTo(RouteCrudIndex, nil)
		return
	case err != nil:
		rc.Fail(fmt.Errorf("failed to get user %s: %w", userID, err))
		return
	}

	rc.HTML(http.StatusOK, "crud_user_show.html", gin.H{
		"Title": user.Username,
		"User":  user,
	})
}

// Delete handles POST /crud/users/:id/delete
func (handler *crudHandler) Delete(ctx *gin.Context) {
	rc := NewRequestContext(ctx, handler.urls)
	userID := ctx.Param("id")

	err := handler.userService.DeleteByID(ctx.Request.Context(), userID)
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		rc.Flash(MsgUserNotFound)
	case err != nil:
		rc.Fail(fmt.Errorf("failed to delete user %s: %w", userID, err))
		return
	default:
		rc.Flash(MsgUserDeleted)
	}

	rc.RedirectTo(RouteCrudIndex, nil)
}

// createUserMessages maps failed binding rules to one message per field
func createUserMessages(validationErrors validator.ValidationErrors) []string {
	var messages []string
	seen := make(map[string]bool)
	for _, fieldErr := range validationErrors {
		if seen[fieldErr.Field()] {
			continue
		}
		seen[fieldErr.Field()] = true

		switch fieldErr.Field() {
		case "Username":
			messages = append(messages, MsgUserNameInvalid)
		case "Email":
			messages = append(messages, MsgUserEmailInvalid)
		}
	}
	return messages
}
