package auth

// Roles recognized by the credential store.
const (
	RoleCitizen  = "citizen"
	RoleHospital = "hospital"
)

// User is a credential record. The password is matched by plain equality;
// the store holds a fixed seed set and is never updated after creation.
type User struct {
	Email    string
	Password string
	Role     string
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult models the login outcome. A credential mismatch is a valid
// negative result, not an error.
type LoginResult struct {
	Success bool
	Role    string
	Message string
}
