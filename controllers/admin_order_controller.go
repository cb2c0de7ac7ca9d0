package controllers

import (
	"errors"
	"strconv"

	"github.com/Div1912/Spice-Bite/entity"
	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/ws"

	"github.com/gin-gonic/gin"
)

type AdminOrderController struct {
	Orders *services.OrderService
	Hub    *ws.TrackingHub
}

func NewAdminOrderController(orders *services.OrderService, hub *ws.TrackingHub) *AdminOrderController {
	return &AdminOrderController{Orders: orders, Hub: hub}
}

// GET /admin/orders?status=&page=&limit=
func (ctl *AdminOrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		st := entity.OrderStatus(v)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &st
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ctl.Orders.ListForAdmin(status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:code
func (ctl *AdminOrderController) Detail(c *gin.Context) {
	d, err := ctl.Orders.DetailForAdmin(c.Param("code"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

type AdvanceStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// POST /admin/orders/:code/status
func (ctl *AdminOrderController) AdvanceStatus(c *gin.Context) {
	code := c.Param("code")

	var req AdvanceStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := ctl.Orders.Advance(code, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrStatusConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	// Push the fresh snapshot to anyone watching this order.
	ctl.Hub.Broadcast(code, ws.TrackingUpdate{
		Code:          d.Order.Code,
		Status:        d.Order.Status,
		TrackingSteps: d.Steps,
	})

	resp.OK(c, d)
}
