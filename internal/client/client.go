package client

type Client struct {
	ID        int64  `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	// GoogleID is the external sign-in identity token; unique when present.
	GoogleID string `json:"-"`
}

// Walk-in placeholder used when a booking arrives without a signed-in client.
const (
	walkInFirstName = "Walk-in"
	walkInLastName  = "Client"
)
