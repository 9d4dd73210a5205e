package domain

var (
	MessageSuccessGetSummary = "financial summary retrieved successfully"
	MessageFailedGetSummary  = "failed to retrieve financial summary"
)

type (
	CategoryRevenue struct {
		Category string  `json:"category"`
		Revenue  float64 `json:"revenue"`
		Quantity int     `json:"quantity"`
	}

	TopMenuItem struct {
		MenuID   string  `json:"menu_id"`
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}

	FinancialSummaryResponse struct {
		TotalRevenue      float64           `json:"total_revenue"`
		OrderCount        int64             `json:"order_count"`
		AverageOrderValue float64           `json:"average_order_value"`
		ByCategory        []CategoryRevenue `json:"by_category"`
		TopItems          []TopMenuItem     `json:"top_items"`
	}
)
