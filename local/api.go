package local

import (
	"net/http"

	"pixveil/config"
	"pixveil/util"
)

/*
 * A local HTTP API around the codec, for hosts that are not the CLI
 * (a browser page, a script, whatever). One process, no state shared
 * between requests; every call carries its own image.
 */
func RunApiServer( conf *config.FullConfig, logger *util.Logger ) error {

	http.HandleFunc( "POST /api/hide", func(w http.ResponseWriter, r *http.Request) {
		handleHide( w, r, &conf.StegConfig, logger )
	})

	http.HandleFunc( "POST /api/extract", func(w http.ResponseWriter, r *http.Request) {
		handleExtract( w, r, &conf.StegConfig, logger )
	})

	http.HandleFunc( "POST /api/capacity", func(w http.ResponseWriter, r *http.Request) {
		handleCapacity( w, r, &conf.StegConfig, logger )
	})

	logger.LogInfo( "Listening and serving at address " + conf.ServerConfig.Address )
	return http.ListenAndServe( conf.ServerConfig.Address, nil )
}
