package local

import (
	"io"
	"net/http"
	"encoding/json"
	"encoding/base64"

	"pixveil/config"
	"pixveil/util"
	"pixveil/stegano/img"
	"pixveil/stegano/lsb"
)

func writeJsonResponse( w http.ResponseWriter, status int, resp any ) {
	data, err := json.Marshal( resp )
	if err != nil {
		http.Error( w, "Internal Server Error", http.StatusInternalServerError )
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader( status )
	w.Write( data )
}

func readJsonRequest( r *http.Request, dst any ) error {
	defer r.Body.Close()
	data, err := io.ReadAll( r.Body )
	if err != nil {
		return err
	}
	return json.Unmarshal( data, dst )
}

func handleHide( w http.ResponseWriter, r *http.Request,
		sc *config.SteganoConfig, logger *util.Logger ) {

	var req HideRequest
	if err := readJsonRequest( r, &req ); err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusBadRequest, HideResponse{ Errors: []string{ err.Error() } } )
		return
	}

	raw, err := base64.StdEncoding.DecodeString( req.Image )
	if err != nil {
		writeJsonResponse( w, http.StatusBadRequest, HideResponse{ Errors: []string{ err.Error() } } )
		return
	}

	buf, format, err := img.Load( raw )
	if err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusUnprocessableEntity, HideResponse{ Errors: []string{ err.Error() } } )
		return
	}

	policy := lsb.ChannelPolicy{ IncludeAlpha: sc.IncludeAlpha }
	encoded, err := lsb.Encode( buf, []byte( req.Message ), policy )
	if err != nil {
		// a too-long message is the client's problem, not ours
		logger.LogWarning( err.Error() )
		writeJsonResponse( w, http.StatusUnprocessableEntity, HideResponse{ Errors: []string{ err.Error() } } )
		return
	}

	out, err := img.Save( encoded, format )
	if err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusInternalServerError, HideResponse{ Errors: []string{ err.Error() } } )
		return
	}

	writeJsonResponse( w, http.StatusOK, HideResponse{
		Errors: []string{},
		Image: base64.StdEncoding.EncodeToString( out ),
		Format: format,
	})
}

func handleExtract( w http.ResponseWriter, r *http.Request,
		sc *config.SteganoConfig, logger *util.Logger ) {

	var req ExtractRequest
	if err := readJsonRequest( r, &req ); err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusBadRequest, ExtractResponse{ Errors: []string{ err.Error() } } )
		return
	}

	raw, err := base64.StdEncoding.DecodeString( req.Image )
	if err != nil {
		writeJsonResponse( w, http.StatusBadRequest, ExtractResponse{ Errors: []string{ err.Error() } } )
		return
	}

	buf, _, err := img.Load( raw )
	if err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusUnprocessableEntity, ExtractResponse{ Errors: []string{ err.Error() } } )
		return
	}

	policy := lsb.ChannelPolicy{ IncludeAlpha: sc.IncludeAlpha }
	payload, length, err := lsb.Decode( buf, policy )
	if err != nil {
		logger.LogWarning( err.Error() )
		writeJsonResponse( w, http.StatusUnprocessableEntity, ExtractResponse{ Errors: []string{ err.Error() } } )
		return
	}

	writeJsonResponse( w, http.StatusOK, ExtractResponse{
		Errors: []string{},
		Message: util.FixUnicode( string( payload ) ),
		Length: length,
	})
}

func handleCapacity( w http.ResponseWriter, r *http.Request,
		sc *config.SteganoConfig, logger *util.Logger ) {

	var req CapacityRequest
	if err := readJsonRequest( r, &req ); err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusBadRequest, CapacityResponse{ Errors: []string{ err.Error() } } )
		return
	}

	raw, err := base64.StdEncoding.DecodeString( req.Image )
	if err != nil {
		writeJsonResponse( w, http.StatusBadRequest, CapacityResponse{ Errors: []string{ err.Error() } } )
		return
	}

	buf, _, err := img.Load( raw )
	if err != nil {
		logger.LogError( err )
		writeJsonResponse( w, http.StatusUnprocessableEntity, CapacityResponse{ Errors: []string{ err.Error() } } )
		return
	}

	policy := lsb.ChannelPolicy{ IncludeAlpha: sc.IncludeAlpha }
	writeJsonResponse( w, http.StatusOK, CapacityResponse{
		Errors: []string{},
		Width: buf.Width,
		Height: buf.Height,
		Channels: policy.ChannelsUsed(),
		MaxBytes: lsb.MaxPayloadBytes( buf.Width, buf.Height, policy.ChannelsUsed() ),
	})
}
