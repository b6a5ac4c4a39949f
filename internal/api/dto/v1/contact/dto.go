package contact

// ContactRequest represents a contact form submission. Fields are pointers so
// an absent key can be told apart from an empty one.
type ContactRequest struct {
	Name    *string `json:"name" validate:"notblank"`
	Email   *string `json:"email" validate:"notblank,email"`
	Subject *string `json:"subject" validate:"notblank"`
	Message *string `json:"message" validate:"notblank"`
}

// Value returns the string behind p, or "" when it is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
