package controllers

import (
	"errors"
	"strconv"

	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := ctl.Cart.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Cart.Add(uid, &in); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	out, err := ctl.Cart.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type UpdateQtyIn struct {
	Qty int `json:"qty"`
}

// PATCH /cart/items/:id
func (ctl *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var in UpdateQtyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Cart.UpdateQty(uid, uint(itemID), in.Qty); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	out, err := ctl.Cart.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /cart/items/:id
func (ctl *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := ctl.Cart.RemoveItem(uid, uint(itemID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": itemID})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := ctl.Cart.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
