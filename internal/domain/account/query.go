package account

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	DefaultOrder    = "created_at"
)

// ListQuery selects one page of the remote directory. Email is an upstream
// substring filter; Status picks exactly one of the mutually exclusive
// Redash listing flags.
type ListQuery struct {
	Email    string
	Status   UserStatus
	Page     int
	PageSize int
	Order    string
}

// Normalized returns a copy with the documented defaults applied:
// status=active, page=1, pageSize=20, order=created_at.
func (q ListQuery) Normalized() ListQuery {
	if q.Status == "" {
		q.Status = StatusActive
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Order == "" {
		q.Order = DefaultOrder
	}
	return q
}

// Page is one page of directory results. Count is the total number of
// matching records across all pages.
type Page struct {
	Results  []User
	Page     int
	PageSize int
	Count    int
}

// TotalPages is ceil(Count / PageSize).
func (p Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Count + p.PageSize - 1) / p.PageSize
}

// FindByEmail returns the first result whose email matches exactly. The
// upstream query filter is a substring match, so a page can carry near
// misses alongside the record being reconciled.
func (p Page) FindByEmail(email string) *User {
	for i := range p.Results {
		if p.Results[i].Email == email {
			return &p.Results[i]
		}
	}
	return nil
}
