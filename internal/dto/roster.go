package dto

import "time"

// ListEmployeesParams are the optional filter/sort/pagination controls of the HR
// roster. A bare request returns the complete set; filtering and sorting are
// independent of pagination, which applies last.
type ListEmployeesParams struct {
	Title         string     `form:"title"`
	VisaClass     string     `form:"visaClass" binding:"omitempty,visaclass"`
	OverallStatus string     `form:"overallStatus" binding:"omitempty,oneof=neverSubmitted pending approved rejected"`
	Search        string     `form:"search"` // free-text over name and email
	CreatedAfter  *time.Time `form:"createdAfter" time_format:"2006-01-02"`
	CreatedBefore *time.Time `form:"createdBefore" time_format:"2006-01-02"`
	Sort          string     `form:"sort" binding:"omitempty,oneof=last7 last30 endSoon endLate"`
	Limit         int        `form:"limit,default=0"`
	Offset        int        `form:"offset,default=0"`
}

// EmployeeRowResponse is one row of the HR roster table.
type EmployeeRowResponse struct {
	Profile   VisaStatusResponse `json:"profile"`
	Title     string             `json:"title"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ListEmployeesResponse wraps the roster rows.
type ListEmployeesResponse struct {
	Employees []EmployeeRowResponse `json:"employees"`
	Total     int                   `json:"total"` // filtered count, before pagination
}
