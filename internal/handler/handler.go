package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"celula-igreja/internal/config"
	"celula-igreja/internal/domain"
	"celula-igreja/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Group        *GroupHandler
	Notification *NotificationHandler
	Comment      *CommentHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth, cfg),
		User:         NewUserHandler(services.Media),
		Group:        NewGroupHandler(services.Group, services.Roster),
		Notification: NewNotificationHandler(services.Workflow, services.Notification, cfg),
		Comment:      NewCommentHandler(services.Comment),
		Audit:        NewAuditHandler(services.Audit),
	}
}

// lookupContext bounds directory and group lookups so a hung fetch cannot
// stall a request indefinitely.
func lookupContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Context())
	}
	return context.WithTimeout(c.Context(), timeout)
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
