package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Email          string `json:"email"          validate:"required,email"`
	Password       string `json:"password"       validate:"required,min=8,max=100"`
	Role           string `json:"role"           validate:"required,oneof=consumer business adjudicator admin"`
	FirstName      string `json:"firstName"      validate:"omitempty,min=1"`
	LastName       string `json:"lastName"       validate:"omitempty,min=1"`
	Phone          string `json:"phone"          validate:"omitempty"`
	BusinessName   string `json:"businessName"   validate:"omitempty"`
	BusinessNumber string `json:"businessNumber" validate:"omitempty"`
}

type registeredUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Status    string `json:"status"`
}

type registerResponse struct {
	Message string         `json:"message"`
	User    registeredUser `json:"user"`
}

// signInRequest is deliberately not shape-validated: any malformed pair
// fails authentication with the same generic error as a wrong password.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Redirect asks the server to answer with a 302 to CallbackURL instead
	// of a JSON body.
	Redirect    bool   `json:"redirect,omitempty"`
	CallbackURL string `json:"callbackUrl,omitempty"`
}

type signInResponse struct {
	Token       string        `json:"token"`
	RedirectURL string        `json:"redirectUrl"`
	User        principalView `json:"user"`
}

type principalView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Status    string `json:"status"`
	Verified  bool   `json:"verified"`
}
