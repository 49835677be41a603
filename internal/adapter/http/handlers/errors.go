package handlers

import (
	"errors"
	"net/http"

	"marketplace_billing/internal/domain/billing"
	"marketplace_billing/internal/usecase"
	"marketplace_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the failures every use case can return. Transition
// and balance messages are shown to the caller verbatim.
func mapCommonError(err error) *pkg.AppError {
	var transitionErr *billing.InvalidTransitionError
	var balanceErr *billing.InsufficientBalanceError
	switch {
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid state transition", http.StatusConflict).WithDetails(transitionErr.Error())
	case errors.As(err, &balanceErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient balance", http.StatusUnprocessableEntity).WithDetails(balanceErr.Error())
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Resource was modified by another request, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrBackend):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Storage backend unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithDetails(err.Error())
}
