package pricing

import (
	"fmt"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/constants"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// Compute 根据购物车小计与收货地址计算配送费与税费
// 纯函数，不读写任何存储。分支按顺序判定，首个命中即返回：
//  1. Nepal + 免费城市 → 免配送费
//  2. Nepal + 其他城市 → 固定配送费 500
//  3. Nepal + 城市未选 → 待定（金额为 0 但状态为 pending，区别于 free）
//  4. 非 Nepal → 配送费待定，按小计 18% 计税
func Compute(subtotal models.Money, address models.DeliveryAddress) models.DeliveryComputation {
	result := models.DeliveryComputation{
		ChargeStatus:   constants.DeliveryChargeStatusPending,
		DeliveryCharge: models.MoneyZero(),
		TaxAmount:      models.MoneyZero(),
	}

	switch {
	case address.IsNepal() && isFreeDeliveryCity(address.City):
		result.FreeDelivery = true
		result.ChargeStatus = constants.DeliveryChargeStatusFree
		result.Message = fmt.Sprintf("Congratulations! You are eligible for free delivery in %s.", address.City)
	case address.IsNepal() && address.City != "":
		result.ChargeStatus = constants.DeliveryChargeStatusCharged
		result.DeliveryCharge = models.NewMoneyFromInt(constants.DeliveryFlatFee)
		result.Message = fmt.Sprintf("Delivery charge to %s is %d. Our team will contact you to confirm.", address.City, constants.DeliveryFlatFee)
	case address.IsNepal():
		result.Message = "Please select your city to calculate the delivery charge."
	default:
		result.Message = "Delivery charge will be calculated based on your location."
		result.TaxApplicable = true
		result.TaxAmount = taxOn(subtotal)
		result.TaxMessage = fmt.Sprintf("An international tax of %d%% applies to your order.", constants.InternationalTaxPct)
	}
	return result
}

// Summarize 计算订单金额汇总：total = subtotal + delivery + tax
func Summarize(subtotal models.Money, computation models.DeliveryComputation) models.OrderSummary {
	return models.OrderSummary{
		Subtotal:       subtotal,
		DeliveryCharge: computation.DeliveryCharge,
		TaxAmount:      computation.TaxAmount,
		Total:          subtotal.Add(computation.DeliveryCharge).Add(computation.TaxAmount),
	}
}

func taxOn(subtotal models.Money) models.Money {
	rate := decimal.NewFromInt(constants.InternationalTaxPct).Div(decimal.NewFromInt(100))
	return models.NewMoneyFromDecimal(subtotal.Decimal.Mul(rate))
}

func isFreeDeliveryCity(city string) bool {
	for _, c := range constants.FreeDeliveryCities {
		if c == city {
			return true
		}
	}
	return false
}
