package models

// Feature is a landing page selling point
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Review is a customer testimonial. Rating is out of five.
type Review struct {
	ID     string `json:"id" yaml:"id"`
	Author string `json:"author" yaml:"author"`
	Rating int    `json:"rating" yaml:"rating"`
	Text   string `json:"text" yaml:"text"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// DashboardStats are the figures on the admin dashboard tab
type DashboardStats struct {
	TodayRevenue   int64   `json:"todayRevenue" yaml:"-"`
	RevenueGrowth  string  `json:"revenueGrowth" yaml:"revenueGrowth"`
	OrderCount     int     `json:"orderCount" yaml:"orderCount"`
	PendingPayment int     `json:"pendingPayment" yaml:"pendingPayment"`
	AverageBrix    float64 `json:"averageBrix" yaml:"averageBrix"`
	TargetBrix     float64 `json:"targetBrix" yaml:"targetBrix"`
	QualityPercent int     `json:"qualityPercent" yaml:"qualityPercent"`
}

// Content is the static storefront copy shown around the catalog
type Content struct {
	HeroImage string    `json:"heroImage"`
	Features  []Feature `json:"features"`
	Reviews   []Review  `json:"reviews"`
	Footer    string    `json:"footer"`
}
