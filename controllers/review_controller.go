package controllers

import (
	"errors"
	"strconv"

	"github.com/Div1912/Spice-Bite/pkg/resp"
	"github.com/Div1912/Spice-Bite/services"
	"github.com/Div1912/Spice-Bite/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// POST /menu/:id/reviews
func (ctl *ReviewController) Submit(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	menuItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var in services.SubmitReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := ctl.Reviews.Submit(uid, uint(menuItemID), &in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadRating):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, rev)
}

// GET /menu/:id/reviews
func (ctl *ReviewController) ListForMenuItem(c *gin.Context) {
	menuItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	items, err := ctl.Reviews.ListForMenuItem(uint(menuItemID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /reviews/:id/helpful
func (ctl *ReviewController) VoteHelpful(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}

	if err := ctl.Reviews.VoteHelpful(uint(reviewID), uid); err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyVoted):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"voted": true})
}
