package controllers

import (
	"errors"
	"regexp"

	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// Form-boundary checks, mirrored from the storefront checkout form.
var (
	phoneRe   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinCodeRe = regexp.MustCompile(`^\d{6}$`)
)

// POST /checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !phoneRe.MatchString(req.Phone) {
		resp.BadRequest(c, "please enter a valid 10-digit Indian phone number")
		return
	}
	if !pinCodeRe.MatchString(req.PinCode) {
		resp.BadRequest(c, "please enter a valid 6-digit PIN code")
		return
	}

	out, err := oc.Orders.Checkout(uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := oc.Orders.ListForUser(uid, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:code
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	code := c.Param("code")

	d, err := oc.Orders.DetailForUser(uid, code)
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

// GET /orders/:code/tracking is the poll fallback for the tracking page.
func (oc *OrderController) Tracking(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	code := c.Param("code")

	t, err := oc.Orders.Tracking(uid, code)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}
