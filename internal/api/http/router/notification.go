package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	h *handler.NotificationHandler,
	authRequired fiber.Handler,
	requireSelf permFn,
) {
	group := api.Group("/notifications", authRequired)
	group.Get("/", requireSelf(authorize.ResourceNotification, authorize.ActionList), h.List)
	group.Get("/unread-count", requireSelf(authorize.ResourceNotification, authorize.ActionRead), h.UnreadCount)
	group.Patch("/read-all", requireSelf(authorize.ResourceNotification, authorize.ActionUpdate), h.MarkAllRead)
	group.Patch("/:id/read", requireSelf(authorize.ResourceNotification, authorize.ActionUpdate), h.MarkRead)
}
