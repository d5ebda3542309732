package types

const ContextUserKey = "user"

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
