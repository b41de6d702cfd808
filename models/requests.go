package models

// RegisterRequest is the payload accepted by the registration and
// account-creation endpoints. All credential fields are required;
// Image is an optional avatar URL carried over from an external source.
type RegisterRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Image    *string `json:"image,omitempty"`
}

// UpdateRequest is the payload accepted by the profile update endpoints
// (PUT and PATCH share semantics). Every field is optional; nil means
// "do not touch". At least one field must be present.
type UpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateRequest) IsEmpty() bool {
	return r.Username == nil && r.Email == nil && r.Password == nil && r.Image == nil
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountPatch describes a partial write against a stored account.
// Nil pointers leave the corresponding field untouched; the repository
// translates non-nil fields into a single partial update operation.
//
// ClearImage removes both image fields from the document; it takes
// precedence over ImageURL/ImageRef.
type AccountPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	ImageURL     *string
	ImageRef     *string
	ClearImage   bool
}

// IsEmpty reports whether the patch would change nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.PasswordHash == nil &&
		p.ImageURL == nil && p.ImageRef == nil && !p.ClearImage
}
