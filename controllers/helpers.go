package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srezaie/resto-board/apperr"
	"github.com/srezaie/resto-board/middleware"
)

// parseID reads the :id route parameter. A non-numeric id renders the
// not-found view, same as a numeric id with no matching row.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderNotFound(c)
		return 0, false
	}
	return uint(id), true
}

func redirectDashboard(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", nil)
	c.Abort()
}

func renderServerError(c *gin.Context, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("Request failed")
	c.HTML(http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}

// finishWrite maps a mutation outcome to the response contract:
// success and validation failures flash a message and redirect back
// to the dashboard, unknown identities render the not-found view, and
// anything else renders the server-error view.
func finishWrite(c *gin.Context, err error, successMessage string) {
	switch {
	case err == nil:
		middleware.AddFlash(c, "success", successMessage)
		redirectDashboard(c)
	case apperr.IsValidation(err):
		middleware.AddFlash(c, "danger", err.Error())
		redirectDashboard(c)
	case errors.Is(err, apperr.ErrNotFound):
		renderNotFound(c)
	default:
		renderServerError(c, err)
	}
}
