package controllers

import (
	"errors"
	"strconv"

	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notif *services.NotificationService
}

func NewNotificationController(notif *services.NotificationService) *NotificationController {
	return &NotificationController{Notif: notif}
}

// GET /notifications
func (ctl *NotificationController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := ctl.Notif.ListForUser(uid, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /notifications/unread feeds the navbar badge.
func (ctl *NotificationController) Unread(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := ctl.Notif.ListUnreadForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(items), "items": items})
}

// POST /notifications/:id/read
func (ctl *NotificationController) MarkRead(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid notification id")
		return
	}

	if err := ctl.Notif.MarkRead(uint(id), uid, role); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"read": true})
}

// GET /admin/notifications is the owner feed on the dashboard.
func (ctl *NotificationController) ListForOwner(c *gin.Context) {
	items, err := ctl.Notif.ListForOwner(50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
