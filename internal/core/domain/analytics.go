package domain

// PropertyAnalytics - сводка по одному объявлению для его владельца.
type PropertyAnalytics struct {
	Views     int
	Favorites int
	Leads     int64
	Viewings  int64
}

// DashboardStats - агрегаты по всем объявлениям владельца.
type DashboardStats struct {
	TotalProperties int64
	ActiveListings  int64
	TotalViews      int64
	TotalFavorites  int64
	TotalLeads      int64
}
