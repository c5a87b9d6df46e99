package storefront

import (
	"errors"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, rule.msg)
			return
		}
	}
	logger.Errorw("handler_unmapped_error",
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.Error(c, fallbackCode, fallbackMsg)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var addressValidationErrorRules = []mappedHandlerError{
	{target: service.ErrCountryRequired, code: response.CodeBadRequest, msg: service.ErrCountryRequired.Error()},
	{target: service.ErrCityRequired, code: response.CodeBadRequest, msg: service.ErrCityRequired.Error()},
	{target: service.ErrStreetRequired, code: response.CodeBadRequest, msg: service.ErrStreetRequired.Error()},
	{target: service.ErrPhoneRequired, code: response.CodeBadRequest, msg: service.ErrPhoneRequired.Error()},
	{target: service.ErrEmailRequired, code: response.CodeBadRequest, msg: service.ErrEmailRequired.Error()},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, msg: service.ErrInvalidCartItem.Error()},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: service.ErrCartItemNotFound.Error()},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: service.ErrCartEmpty.Error()},
	{target: service.ErrAddressNotSubmitted, code: response.CodeBadRequest, msg: service.ErrAddressNotSubmitted.Error()},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrUnknownSection, code: response.CodeNotFound, msg: service.ErrUnknownSection.Error()},
	{target: service.ErrBackendUnavailable, code: response.CodeUpstream, msg: service.ErrBackendUnavailable.Error()},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: service.ErrInvalidCredentials.Error()},
	{target: service.ErrRegistrationFailed, code: response.CodeBadRequest, msg: service.ErrRegistrationFailed.Error()},
	{target: service.ErrBackendUnavailable, code: response.CodeUpstream, msg: service.ErrBackendUnavailable.Error()},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrLoginRequired, code: response.CodeUnauthorized, msg: service.ErrLoginRequired.Error()},
	{target: service.ErrBackendUnavailable, code: response.CodeUpstream, msg: service.ErrBackendUnavailable.Error()},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}

func respondAddressError(c *gin.Context, err error) {
	respondWithMappedError(c, err, addressValidationErrorRules, response.CodeInternal, "address submission failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutErrorRules, cartErrorRules), response.CodeInternal, "checkout failed")
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "catalog request failed")
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "authentication failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order history request failed")
}
