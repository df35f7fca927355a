// internal/handlers/errors.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront/internal/models"
	"github.com/javajoker/storefront/internal/utils"
)

// respondError maps a domain error kind to its HTTP response.
func respondError(c *gin.Context, err error) {
	switch models.KindOf(err) {
	case models.ErrInvalidArgument:
		utils.BadRequestResponse(c, err.Error(), nil)
	case models.ErrNotFound:
		utils.NotFoundResponse(c, err.Error())
	case models.ErrConflict:
		utils.ConflictResponse(c, err.Error())
	case models.ErrInvalidState:
		utils.InvalidStateResponse(c, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unexpected error")
		utils.InternalErrorResponse(c, "")
	}
}

// bindJSON decodes and validates the request body, writing the error response
// itself when it fails.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}
