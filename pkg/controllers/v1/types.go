package v1

type URIID struct {
	ID int `uri:"id" binding:"required,min=1" example:"3"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

// defaultLimit is the number of records returned when no limit is requested.
const defaultLimit = 50

// paginate returns the page of records and its pagination information.
// A negative limit returns all records after the offset.
func paginate[T any](records []T, offset uint, limit int) ([]T, Pagination) {
	total := len(records)

	start := total
	if offset < uint(total) {
		start = int(offset)
	}

	end := total
	if limit >= 0 && limit < total-start {
		end = start + limit
	}

	page := records[start:end]
	return page, Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}
