package handlers

import (
	"errors"
	"net/http"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"rubrox/internal/usecase/interfaces"
	"rubrox/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)

// mapError classifies use case errors. Domain codes are the response codes;
// anything that is not a DomainError is an internal failure.
func mapError(err error) *pkg.AppError {
	var domainErr *entities.DomainError
	switch {
	case errors.Is(err, usecase.ErrFlowActionFailed):
		return pkg.NewDomainError(usecase.ErrFlowActionFailed.Code, err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInsufficientBalance):
		return pkg.NewDomainError(entities.ErrInsufficientBalance.Code, err.Error(), err, http.StatusConflict)
	case !errors.As(err, &domainErr):
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	code := domainErr.Code
	if code == "" {
		code = string(domainErr.Kind)
	}
	return pkg.NewDomainError(code, domainErr.Error(), err, statusFor(domainErr))
}

func statusFor(err *entities.DomainError) int {
	switch {
	case err.Code == interfaces.ErrVersionConflict.Code, err.Code == usecase.ErrBudgetLineExists.Code:
		return http.StatusConflict
	case err.Kind == entities.KindValidation:
		return http.StatusBadRequest
	case err.Kind == entities.KindForbidden:
		return http.StatusForbidden
	case err.Kind == entities.KindNotFound:
		return http.StatusNotFound
	case err.Kind == entities.KindState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
