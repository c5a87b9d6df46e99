package models

import "github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"

// DeliveryAddress 收货地址
// 生命周期：创建时 country 默认 Nepal；五个字段全部通过非空校验后才算提交；
// 提交后落库，下次会话读到即视为已提交。
type DeliveryAddress struct {
	Country       string `json:"country"`
	City          string `json:"city"`
	StreetAddress string `json:"street_address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Submitted     bool   `json:"submitted"`
}

// NewDeliveryAddress 创建空地址，国家默认 Nepal
func NewDeliveryAddress() DeliveryAddress {
	return DeliveryAddress{Country: constants.CountryNepal}
}

// IsNepal 判断是否国内地址
func (a DeliveryAddress) IsNepal() bool {
	return a.Country == constants.CountryNepal
}

// State 返回地址状态机当前状态
func (a DeliveryAddress) State() string {
	if a.Submitted {
		return constants.AddressStateSubmitted
	}
	if a.Country == "" && a.City == "" && a.StreetAddress == "" && a.Phone == "" && a.Email == "" {
		return constants.AddressStateNone
	}
	return constants.AddressStateDraft
}
