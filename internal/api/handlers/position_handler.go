package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/services"
	"github.com/markoub/careers/internal/utils"
)

// The department filter's "show everything" sentinel, sent by the
// landing page's default dropdown entry.
const allDepartments = "All departments"

type PositionHandler struct {
	svc services.PositionService
}

func NewPositionHandler(svc services.PositionService) *PositionHandler {
	return &PositionHandler{svc: svc}
}

func (h *PositionHandler) List(c *gin.Context) {
	department := c.Query("department")
	if department == allDepartments {
		department = ""
	}

	rows, err := h.svc.List(c.Request.Context(), department)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *PositionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type PositionRequest struct {
	Title      string `json:"title" binding:"required"`
	Department string `json:"department" binding:"required"`
	WorkType   string `json:"work_type" binding:"required"`
	Location   string `json:"location" binding:"required"`

	Description string `json:"description" binding:"required"`
	WhatWeDo    string `json:"what_we_do"`
	YourMission string `json:"your_mission"`
	YourProfile string `json:"your_profile"`
	TechStack   string `json:"tech_stack"`
	WhatWeOffer string `json:"what_we_offer"`
}

func (r *PositionRequest) apply(p *models.Position) {
	p.Title = r.Title
	p.Department = r.Department
	p.WorkType = r.WorkType
	p.Location = r.Location
	p.Description = r.Description
	p.WhatWeDo = r.WhatWeDo
	p.YourMission = r.YourMission
	p.YourProfile = r.YourProfile
	p.TechStack = r.TechStack
	p.WhatWeOffer = r.WhatWeOffer
}

func (h *PositionHandler) Create(c *gin.Context) {
	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PositionHandler.Create", "invalid request body", err))
		return
	}

	var p models.Position
	req.apply(&p)

	if err := h.svc.Create(c.Request.Context(), &p); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *PositionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PositionHandler.Update", "invalid request body", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.apply)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PositionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
