package models

// User holds the structure for the user collection in mongo. The id is
// generated by the application before insert, never by the store. The
// password hash is never serialized into responses.
type User struct {
	ID           string `json:"_id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"passwordHash"`
}

// RegisterRequest is the body for the create-user route
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned on a successful registration
type RegisterResponse struct {
	ID string `json:"id"`
}
