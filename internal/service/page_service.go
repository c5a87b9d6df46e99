package service

// PolicySection 政策文档章节
type PolicySection struct {
	Heading string   `json:"heading"`
	Body    []string `json:"body"`
}

// PolicyDocument 站点政策文档
type PolicyDocument struct {
	Title     string          `json:"title"`
	UpdatedAt string          `json:"updated_at"`
	Sections  []PolicySection `json:"sections"`
}

// PageService 静态页面服务
type PageService struct {
	policy PolicyDocument
}

// NewPageService 创建静态页面服务
func NewPageService() *PageService {
	return &PageService{policy: defaultPolicy()}
}

// Policy 返回政策文档
func (s *PageService) Policy() PolicyDocument {
	return s.policy
}

func defaultPolicy() PolicyDocument {
	return PolicyDocument{
		Title:     "Store Policies",
		UpdatedAt: "2026-01-01",
		Sections: []PolicySection{
			{
				Heading: "Delivery",
				Body: []string{
					"Free delivery is available within Kathmandu, Lalitpur and Bhaktapur.",
					"Deliveries to other cities in Nepal carry a flat charge of 500, confirmed by our team before dispatch.",
					"International delivery charges are calculated based on your location and communicated before shipping.",
				},
			},
			{
				Heading: "Taxes",
				Body: []string{
					"Orders delivered within Nepal are not subject to additional tax.",
					"International orders carry an 18% tax calculated on the order subtotal.",
				},
			},
			{
				Heading: "Returns",
				Body: []string{
					"Unused items in original packaging can be returned within 7 days of delivery.",
					"Refunds are processed to the original payment method within 5 business days of receiving the return.",
				},
			},
			{
				Heading: "Privacy",
				Body: []string{
					"Your delivery address and contact details are used only to fulfil your order.",
					"We never sell your personal information to third parties.",
				},
			},
		},
	}
}
