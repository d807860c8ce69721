package app

import (
	"go.uber.org/zap"

	"shapes/internal/domain"
	profilesvc "shapes/internal/services/profile"
	"shapes/internal/store"
)

// App holds what every command needs before a deployment is wired.
type App struct {
	Home    string
	Log     *zap.Logger
	Profile domain.ProfileService
}

// New returns an App rooted at home.
func New(home string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		Home:    home,
		Log:     log,
		Profile: profilesvc.New(store.NewSecretFileStore(home)),
	}
}
