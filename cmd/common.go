package cmd

import (
	"github.com/rs/zerolog/log"

	"github.com/UserHub/userhub-directory-services/db"
	"github.com/UserHub/userhub-directory-services/internal/appconfig"
)

var (
	appCfg    *appconfig.Config
	userStore db.UserStore
)

// commonSetUp sets up logging, loads the config and connects the user store.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	userStore, err = db.Open(appCfg.DatabaseDriver(), appCfg.DatabaseSource(), &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize user store")
	}
}
