package schemas

// MaxDescriptionLength is the longest description the store column
// (MEDIUMTEXT) can hold once charset overhead is accounted for.
const MaxDescriptionLength = 16777210

// PostPayload is the request body for creating or updating a post.
type PostPayload struct {
	Title       *string `json:"title" validate:"required,min=3,max=45"`
	Description *string `json:"description" validate:"required,max=16777210"`
	Category    *string `json:"category" validate:"required,oneof=Informativo Educativo Publicitario 'De concientizacion' 'De actualidad' 'De terceros'"`
}

var postMessages = map[string]string{
	"title.required":       "title is required",
	"title.min":            "the title must have at least three characters",
	"title.max":            "the title must not exceed forty-five characters",
	"description.required": "description is required",
	"description.max":      "the description must not exceed 16777210 characters",
	"category.required":    "category is required",
	"category.oneof":       "category must be one of: Informativo, Educativo, Publicitario, De concientizacion, De actualidad, De terceros",
}

// ValidatePost checks a post payload and returns one error per failed
// field, or nil when the payload is well-formed.
func ValidatePost(p PostPayload) []FieldError {
	return translate(validate.Struct(p), postMessages)
}
