package webflow

import "net/http"

// Config defines Webflow Data API client settings.
type Config struct {
	Token        string
	CollectionID string
	BaseURL      string
	HTTPClient   *http.Client
}

// Client talks to one collection of the Webflow Data API v2.
type Client struct {
	token        string
	collectionID string
	baseURL      string
	httpClient   *http.Client
}

// Item is a collection item as returned by the v2 API. FieldData keys are the
// collection's field identifiers; the field mapper owns their meaning.
type Item struct {
	ID            string         `json:"id"`
	CmsLocaleID   string         `json:"cmsLocaleId,omitempty"`
	LastPublished string         `json:"lastPublished,omitempty"`
	LastUpdated   string         `json:"lastUpdated,omitempty"`
	CreatedOn     string         `json:"createdOn,omitempty"`
	IsArchived    bool           `json:"isArchived"`
	IsDraft       bool           `json:"isDraft"`
	FieldData     map[string]any `json:"fieldData"`
}

// ItemList is one page of collection items.
type ItemList struct {
	Items      []Item     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

type itemRequest struct {
	IsArchived bool           `json:"isArchived"`
	IsDraft    bool           `json:"isDraft"`
	FieldData  map[string]any `json:"fieldData"`
}

type fieldPatch struct {
	FieldData map[string]any `json:"fieldData"`
}

type publishRequest struct {
	ItemIDs []string `json:"itemIds"`
}
