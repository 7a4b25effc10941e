package models

// JobOffer is the external shape of one job posting. The Webflow collection is
// authoritative; every instance is rebuilt from a remote item on each read.
// Optional fields are always plain strings, empty when unset, so API consumers
// get a stable shape.
type JobOffer struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	Company          string `json:"company"`
	Location         string `json:"location"`
	ContractType     string `json:"contractType"`
	Salary           string `json:"salary"`
	Email            string `json:"email"`
	Telephone        string `json:"telephone"`
	Address          string `json:"address"`
	Responsibilities string `json:"responsibilities"`
	Profile          string `json:"profile"`
	Published        bool   `json:"published"`
	CreatedOn        string `json:"createdOn,omitempty"`
	LastUpdated      string `json:"lastUpdated,omitempty"`
}

// OfferInput carries the writable attributes of an offer as submitted by a
// client. The slug is never part of the input: it is generated on create and
// preserved on update.
type OfferInput struct {
	Title            string
	Description      string
	Company          string
	Location         string
	ContractType     string
	Salary           string
	Email            string
	Telephone        string
	Address          string
	Responsibilities string
	Profile          string
}

// Attributes returns the input keyed by logical attribute name, the form the
// field mapper consumes.
func (in OfferInput) Attributes() map[string]string {
	return map[string]string{
		"title":            in.Title,
		"description":      in.Description,
		"company":          in.Company,
		"location":         in.Location,
		"contractType":     in.ContractType,
		"salary":           in.Salary,
		"email":            in.Email,
		"telephone":        in.Telephone,
		"address":          in.Address,
		"responsibilities": in.Responsibilities,
		"profile":          in.Profile,
	}
}

// OfferList is one page of offers.
type OfferList struct {
	Items  []JobOffer `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}
