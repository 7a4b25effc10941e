// Package mapper translates between the API's logical attribute names and the
// Webflow collection's field identifiers. All knowledge of remote field keys
// lives here, as data, never inline at call sites.
package mapper

import (
	"github.com/max9849/webflow-offres-api/internal/models"
	"github.com/max9849/webflow-offres-api/internal/slug"
	"github.com/max9849/webflow-offres-api/internal/webflow"
)

// defaultFields maps logical attribute names to the field keys of the
// production "offres" collection. Individual entries can be overridden
// through configuration when a collection uses different keys.
var defaultFields = map[string]string{
	"title":            "name",
	"slug":             "slug",
	"description":      "description-du-poste",
	"company":          "entreprise",
	"location":         "lieu",
	"contractType":     "type-de-contrat",
	"salary":           "salaire",
	"email":            "email",
	"telephone":        "telephone",
	"address":          "adresse",
	"responsibilities": "missions",
	"profile":          "profil",
}

// richFields are stored as rich text in the collection: plain text is wrapped
// in paragraph markup on the way out and stripped back on the way in.
var richFields = map[string]bool{
	"description":      true,
	"responsibilities": true,
	"profile":          true,
}

type Mapper struct {
	fields map[string]string
	slugs  *slug.Generator
}

// New builds a Mapper using the default field table with the given overrides
// applied. Unknown override keys are ignored.
func New(overrides map[string]string, slugs *slug.Generator) *Mapper {
	fields := make(map[string]string, len(defaultFields))
	for logical, key := range defaultFields {
		fields[logical] = key
	}
	for logical, key := range overrides {
		if _, known := fields[logical]; known && key != "" {
			fields[logical] = key
		}
	}
	return &Mapper{fields: fields, slugs: slugs}
}

// ToFieldData builds the fieldData payload for a write. When existingSlug is
// empty (creation) a fresh slug is generated from the title; otherwise the
// given slug is forwarded untouched, so updates never regenerate it.
func (m *Mapper) ToFieldData(in models.OfferInput, existingSlug string) map[string]any {
	fieldData := make(map[string]any, len(m.fields))
	for logical, value := range in.Attributes() {
		key, ok := m.fields[logical]
		if !ok {
			continue
		}
		if richFields[logical] {
			fieldData[key] = plainToRich(value)
		} else {
			fieldData[key] = value
		}
	}

	if existingSlug == "" {
		existingSlug = m.slugs.Make(in.Title)
	}
	fieldData[m.fields["slug"]] = existingSlug

	return fieldData
}

// FromItem flattens a remote item into the external offer shape. Missing
// fields come back as empty strings, and published is derived from the
// draft/archived flags.
func (m *Mapper) FromItem(item webflow.Item) models.JobOffer {
	get := func(logical string) string {
		value, _ := item.FieldData[m.fields[logical]].(string)
		return value
	}

	return models.JobOffer{
		ID:               item.ID,
		Title:            get("title"),
		Slug:             get("slug"),
		Description:      richToPlain(get("description")),
		Company:          get("company"),
		Location:         get("location"),
		ContractType:     get("contractType"),
		Salary:           get("salary"),
		Email:            get("email"),
		Telephone:        get("telephone"),
		Address:          get("address"),
		Responsibilities: richToPlain(get("responsibilities")),
		Profile:          richToPlain(get("profile")),
		Published:        !item.IsDraft && !item.IsArchived,
		CreatedOn:        item.CreatedOn,
		LastUpdated:      item.LastUpdated,
	}
}
