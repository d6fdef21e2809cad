package entities

// ProductRecord is one scanned product inside the persisted collection blob.
// The JSON field names are the wire format of the stored array and must not
// change, otherwise previously stored collections become unreadable.
type ProductRecord struct {
	ID       string         `json:"_id"`
	Ean      string         `json:"ean"`
	Name     string         `json:"name"`
	Brands   string         `json:"brands,omitempty"`
	ImageURL string         `json:"image_front_url,omitempty"`
	Date     ExpirationDate `json:"date"`
}

// ExpirationDate is a plain calendar date, no time of day, no timezone.
type ExpirationDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// IsZero reports whether no date was assigned.
func (d ExpirationDate) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}
