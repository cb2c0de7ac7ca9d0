package controllers

import (
	"errors"
	"strconv"

	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/repository"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func parseBoolFlag(c *gin.Context, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b := v == "true" || v == "1"
	return &b
}

// GET /menu?category=&veg=&spicy=&q=
func (ctl *MenuController) List(c *gin.Context) {
	f := repository.MenuFilter{
		Category:   c.Query("category"),
		Vegetarian: parseBoolFlag(c, "veg"),
		Spicy:      parseBoolFlag(c, "spicy"),
		Query:      c.Query("q"),
	}
	items, err := ctl.Menu.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	// Anonymous browsing is fine; the favorite flag just stays false.
	uid := utils.CurrentUserID(c)

	out, err := ctl.Menu.Detail(uint(id), uid)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menu/:id/related
func (ctl *MenuController) Related(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	items, err := ctl.Menu.Related(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /categories
func (ctl *MenuController) Categories(c *gin.Context) {
	cats, err := ctl.Menu.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// PUT /menu/:id/favorite
func (ctl *MenuController) AddFavorite(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := ctl.Menu.AddFavorite(uid, uint(id)); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorite": true})
}

// DELETE /menu/:id/favorite
func (ctl *MenuController) RemoveFavorite(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := ctl.Menu.RemoveFavorite(uid, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorite": false})
}

// GET /favorites
func (ctl *MenuController) ListFavorites(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	favs, err := ctl.Menu.ListFavorites(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": favs})
}
