package constants

// 会话存储键常量
const (
	SessionKeyCart            = "cart"
	SessionKeyWishlist        = "wishlist"
	SessionKeyDeliveryAddress = "deliveryAddress"
	SessionKeyCheckoutData    = "checkoutData"
	SessionKeyToken           = "token"
)

// 配送计价常量
const (
	CountryNepal        = "Nepal"
	CountryOther        = "Other"
	DeliveryFlatFee     = 500
	InternationalTaxPct = 18
)

// 配送费状态常量（区分"免费的 0"与"待定的 0"）
const (
	DeliveryChargeStatusPending = "pending"
	DeliveryChargeStatusFree    = "free"
	DeliveryChargeStatusCharged = "charged"
)

// 地址状态常量
const (
	AddressStateNone      = "no_address"
	AddressStateDraft     = "address_draft"
	AddressStateSubmitted = "address_submitted"
)

// FreeDeliveryCities 国内免配送费城市
var FreeDeliveryCities = []string{"Kathmandu", "Lalitpur", "Bhaktapur"}

// NepalCities 国内可选城市列表（Nepal 时 city 仅限此集合）
var NepalCities = []string{
	"Kathmandu",
	"Lalitpur",
	"Bhaktapur",
	"Pokhara",
	"Biratnagar",
	"Birgunj",
	"Bharatpur",
	"Butwal",
	"Dharan",
	"Dhangadhi",
	"Hetauda",
	"Itahari",
	"Janakpur",
	"Nepalgunj",
}

// Countries 收货国家枚举（含自由填写的 Other）
var Countries = []string{
	CountryNepal,
	"India",
	"China",
	"USA",
	"UK",
	"Australia",
	CountryOther,
}

// 商品浏览板块常量
const (
	CatalogSectionElectronics = "electronics"
	CatalogSectionFashion     = "fashion"
	CatalogSectionSports      = "sports"
	CatalogSectionFeatured    = "featured"
)

// 商品排序常量
const (
	CatalogSortPriceAsc     = "price_asc"
	CatalogSortPriceDesc    = "price_desc"
	CatalogSortDiscountDesc = "discount_desc"
)

// 事件主题常量
const (
	EventCartChanged     = "cart_changed"
	EventWishlistChanged = "wishlist_changed"
)

// 队列与任务常量
const (
	QueueDefault        = "default"
	TaskCheckoutHandoff = "checkout:handoff"
)
