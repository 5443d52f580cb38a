package domain

// DashboardCounts — счетчики для главной страницы кабинета брокера.
type DashboardCounts struct {
	Properties     int
	Clients        int
	UpcomingEvents int
	UnreadMessages int
}
