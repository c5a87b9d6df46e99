package service

import "errors"

// 地址校验错误（按 country → city → street → phone → email 顺序返回首个失败项）
var (
	ErrCountryRequired = errors.New("please select your country")
	ErrCityRequired    = errors.New("please select your city")
	ErrStreetRequired  = errors.New("please enter your street address")
	ErrPhoneRequired   = errors.New("please enter your phone number")
	ErrEmailRequired   = errors.New("please enter your email address")
)

// 购物车与结算错误
var (
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrCartItemNotFound    = errors.New("item not found in cart")
	ErrCartEmpty           = errors.New("your cart is empty")
	ErrAddressNotSubmitted = errors.New("please submit your delivery address")
)

// 浏览与认证错误
var (
	ErrUnknownSection     = errors.New("unknown catalog section")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrLoginRequired      = errors.New("login required")
	ErrBackendUnavailable = errors.New("service is temporarily unavailable")
)
