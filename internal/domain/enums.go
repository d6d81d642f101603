package domain

// DocumentType is the category of physical document being processed.
// It determines which prompt template and output schema apply.
type DocumentType string

const (
	DocTypeIdentityCard           DocumentType = "identity_card"
	DocTypeMotorcycleRegistration DocumentType = "motorcycle_registration"
	DocTypeCarRegistration        DocumentType = "car_registration"
	DocTypeCarInspection          DocumentType = "car_inspection"
)

// Valid reports whether dt is one of the known document types.
func (dt DocumentType) Valid() bool {
	switch dt {
	case DocTypeIdentityCard, DocTypeMotorcycleRegistration, DocTypeCarRegistration, DocTypeCarInspection:
		return true
	}
	return false
}

// fieldSchemas holds the closed field set per document type. A successful
// extraction carries exactly these keys; unknown information is null.
var fieldSchemas = map[DocumentType][]string{
	DocTypeIdentityCard: {
		"personal_identification_number",
		"full_name",
		"date_of_birth",
		"sex",
		"nationality",
		"place_of_residence",
		"place_of_birth",
		"place_of_origin",
		"date_of_issue",
		"date_of_expiry",
	},
	DocTypeMotorcycleRegistration: {
		"full_name",
		"address",
		"brand",
		"model_code",
		"engine_no",
		"chassis_no",
		"color",
		"plate_no",
	},
	DocTypeCarRegistration: {
		"address",
		"brand",
		"model_code",
		"engine_no",
		"chassis_no",
		"color",
		"plate_no",
		"seating_capacity",
		"date_of_expiry",
	},
	DocTypeCarInspection: {
		"brand",
		"model_code",
		"engine_no",
		"chassis_no",
		"type",
		"capacity",
		"plate_no",
		"seating_capacity",
		"date_of_expiry",
	},
}

// FieldSchema returns the fixed field set for a document type.
// The returned slice must not be mutated.
func FieldSchema(dt DocumentType) []string {
	return fieldSchemas[dt]
}

// MergedIdentitySchema is the field set of a merged identity card record:
// the identity_card schema minus place_of_origin, which is consumed as a
// fallback source during the merge and not exposed.
var MergedIdentitySchema = []string{
	"personal_identification_number",
	"full_name",
	"date_of_birth",
	"sex",
	"nationality",
	"place_of_residence",
	"place_of_birth",
	"date_of_issue",
	"date_of_expiry",
}

// ImageType represents the allowed image types for upload.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
)

// AllowedExtensions maps file extensions (without dot) to ImageType.
var AllowedExtensions = map[string]ImageType{
	"jpg":  ImageTypeJPG,
	"jpeg": ImageTypeJPG,
	"png":  ImageTypePNG,
}

// MaxUploadBytes is the per-image upload ceiling.
const MaxUploadBytes = 5_000_000
