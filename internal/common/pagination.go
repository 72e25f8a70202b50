package common

// Pagination is a one-based page request shared by the listing operations.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (p Pagination) Validate() error {
	v := NewValidator()

	v.Check(p.Page >= 1, "page", "must be at least 1")
	v.Check(p.PerPage >= 1, "per_page", "must be at least 1")

	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

func (p Pagination) Limit() int {
	return p.PerPage
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
