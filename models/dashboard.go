package models

// SortKey selects the timestamp the dashboard orders todos by.
type SortKey string

const (
	SortByUpdated SortKey = "updated"
	SortByCreated SortKey = "created"
	SortByDue     SortKey = "due"
)

// SortOrder is the direction of the dashboard ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DashboardQuery configures the merged todo listing.
type DashboardQuery struct {
	Sort  SortKey   `json:"sort"`
	Order SortOrder `json:"order"`
}

// DashboardTodo is a todo enriched with the name of its project.
type DashboardTodo struct {
	Todo
	ProjectName string `json:"projectName"`
}
