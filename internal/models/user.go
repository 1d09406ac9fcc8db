package models

// User is the credential record stored in the users collection. The
// PasswordHash never leaves the server: bcrypt hash, not serialized to JSON.
type User struct {
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	RewardPoints int    `bson:"rewardPoints,omitempty" json:"rewardPoints"`
}
