package extract

import (
	"vietscan/internal/domain"
)

const defaultNationality = "Việt Nam"

// MergeIdentity combines the front and back extraction results of an
// identity card into a single record. The merge is all-or-nothing: if either
// side failed or lacks field data, the whole merge fails and no field from
// the other side leaks through.
//
// Field resolution is first-non-null with named fallback sources: the
// portrait side (front) carries the personal fields, the back carries
// residence and validity fields, and place_of_origin from the front serves
// as the fallback birth place. The merged record does not expose
// place_of_origin itself.
func MergeIdentity(front, back domain.ExtractionResult) domain.ExtractionResult {
	if !front.Success || !back.Success || front.Data == nil || back.Data == nil {
		return domain.NewFailure("one or both OCR processes failed")
	}

	nationality := defaultNationality
	merged := domain.Fields{
		"personal_identification_number": front.Data.Get("personal_identification_number"),
		"full_name":                      front.Data.Get("full_name"),
		"date_of_birth":                  front.Data.Get("date_of_birth"),
		"sex":                            front.Data.Get("sex"),
		"nationality":                    firstNonNil(front.Data.Get("nationality"), &nationality),
		"place_of_residence":             firstNonNil(front.Data.Get("place_of_residence"), back.Data.Get("place_of_residence")),
		"place_of_birth":                 firstNonNil(back.Data.Get("place_of_birth"), front.Data.Get("place_of_origin")),
		"date_of_issue":                  back.Data.Get("date_of_issue"),
		"date_of_expiry":                 firstNonNil(back.Data.Get("date_of_expiry"), front.Data.Get("date_of_expiry")),
	}

	return domain.NewSuccess(domain.DocTypeIdentityCard, merged)
}

func firstNonNil(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
