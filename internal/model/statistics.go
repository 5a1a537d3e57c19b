package model

// RegionRevenue is the summed revenue of one region
type RegionRevenue struct {
	Region       string  `json:"region"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ProductQuantity ranks a product by the number of units sold
type ProductQuantity struct {
	Product           string `json:"product"`
	TotalQuantitySold int    `json:"totalQuantitySold"`
}

// TrendPoint is one time bucket of a trend series.
// Week is set only for weekly buckets, Day only for daily ones.
type TrendPoint struct {
	Period       string  `json:"period"`
	Year         int     `json:"year"`
	Month        int     `json:"month,omitempty"`
	Week         int     `json:"week,omitempty"`
	Day          int     `json:"day,omitempty"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalSales   int     `json:"totalSales"`
}

// SalesSummary aggregates a filtered record set into headline figures
type SalesSummary struct {
	RecordCount       int     `json:"recordCount"`
	TotalQuantitySold int     `json:"totalQuantitySold"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// FilteredSales is a filtered record list together with the region fold of the same list
type FilteredSales struct {
	Records         []SalesRecord   `json:"records"`
	RevenueByRegion []RegionRevenue `json:"revenueByRegion"`
}
