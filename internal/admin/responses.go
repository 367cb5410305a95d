package admin

import catalog "holocron/internal/catalog/models"

// UserResponse never carries the password hash.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UsersListResponse wraps the list of users for HTTP response.
type UsersListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

func toUserResponse(u *catalog.User) UserResponse {
	return UserResponse{ID: int64(u.ID), Email: u.Email}
}

func toUsersListResponse(users []*catalog.User) UsersListResponse {
	out := UsersListResponse{Users: make([]UserResponse, 0, len(users)), Total: len(users)}
	for _, u := range users {
		out.Users = append(out.Users, toUserResponse(u))
	}
	return out
}
