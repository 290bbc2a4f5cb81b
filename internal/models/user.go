package mbiri

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// user roles
const (
	RoleCreator = "creator"
	RoleViewer  = "viewer"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Username       string             `bson:"username" json:"username"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	UserType       string             `bson:"user_type" json:"user_type"`
	Points         int                `bson:"points" json:"points"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// UserUpdate carries the mutable profile fields; empty strings are not applied.
type UserUpdate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserPatch is the storage-level patch built by the service after password
// hashing. Empty fields are left untouched.
type UserPatch struct {
	Email          string
	Username       string
	HashedPassword string
}
