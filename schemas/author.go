package schemas

// AuthorPayload is the request body for creating or updating an author.
// Pointer fields distinguish a missing key from an empty value.
type AuthorPayload struct {
	Name  *string `json:"name" validate:"required,min=3"`
	Email *string `json:"email" validate:"required,email"`
	Image *string `json:"image" validate:"required,url"`
}

var authorMessages = map[string]string{
	"name.required":  "the name field is required",
	"name.min":       "the name field must have at least three characters",
	"email.required": "the email field is required",
	"email.email":    "invalid email address",
	"image.required": "the image field is required",
	"image.url":      "invalid url",
}

// ValidateAuthor checks an author payload and returns one error per failed
// field, or nil when the payload is well-formed.
func ValidateAuthor(p AuthorPayload) []FieldError {
	return translate(validate.Struct(p), authorMessages)
}
