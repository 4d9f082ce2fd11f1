package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markoub/careers/internal/services"
	"github.com/markoub/careers/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit reads the multipart application form. Field presence and file
// constraints are the service's call; the handler only moves the typed
// fields and the raw stream across.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	in := services.SubmitApplicationInput{
		FullName:      c.PostForm("fullName"),
		Email:         c.PostForm("email"),
		PositionID:    c.PostForm("positionId"),
		IsSpontaneous: c.PostForm("isSpontaneous") == "true",
	}

	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, "ApplicationHandler.Submit", "failed to open upload", err))
			return
		}
		defer f.Close()

		in.Resume = f
		in.ResumeSize = fh.Size
		in.ContentType = fh.Header.Get("Content-Type")
	}

	row, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
