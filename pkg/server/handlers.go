package server

import (
	"github.com/TurboProjects/Notes-App-Challenge/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Category *handler.Category
	Note     *handler.Note
}
