package services

import (
	"github.com/UserHub/userhub-directory-services/db"
	"github.com/UserHub/userhub-directory-services/internal/appconfig"
	"github.com/UserHub/userhub-directory-services/internal/web"
)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config *appconfig.Config
	Store  db.UserStore
	Pages  *web.Renderer
}
