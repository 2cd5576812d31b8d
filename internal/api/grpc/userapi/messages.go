// Package userapi describes the crudify.v1.UserAdmin gRPC service: its
// messages, server registration and client. Messages travel as JSON.
package userapi

import "time"

// User is the wire form of model.User.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ListUsersRequest asks for the current list. With Refresh set the list is
// reloaded from the store first.
type ListUsersRequest struct {
	Refresh bool `json:"refresh"`
}

// ListUsersResponse carries the current list. Loading is set while a
// reload is pending and Busy while a mutation is in flight.
type ListUsersResponse struct {
	Users   []User `json:"users"`
	Loading bool   `json:"loading"`
	Busy    bool   `json:"busy"`
}

type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// UpdateUserRequest carries the fields to change. Absent fields keep the
// value from the current list.
type UpdateUserRequest struct {
	ID     string  `json:"id"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

// MutationResponse reports a successful mutation with the reloaded list.
type MutationResponse struct {
	Message string `json:"message"`
	Users   []User `json:"users"`
}

type WatchNotificationsRequest struct{}

type Notification struct {
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}
