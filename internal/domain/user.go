package domain

// User is a record in the "users" collection. PasswordHash is stored
// under the "password" field and only ever holds a bcrypt hash.
type User struct {
	Username     string `firestore:"username" json:"username"`
	Email        string `firestore:"email" json:"email"`
	PasswordHash string `firestore:"password" json:"password"`
	FirstName    string `firestore:"first_name" json:"first_name"`
	LastName     string `firestore:"last_name" json:"last_name"`
	ProjectID    string `firestore:"project_id" json:"project_id"`
}

// Field names as stored in the collection; update maps are keyed by these.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldProjectID = "project_id"
)
