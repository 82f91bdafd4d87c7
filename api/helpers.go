package api

import (
	"encoding/json"
	"net/http"
)

func writeStatusOKResponse(w http.ResponseWriter, jsonObj interface{}) {
	writeJSONResponse(w, http.StatusOK, jsonObj)
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, jsonObj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if jsonObj != nil {
		jsonBytes, err := json.Marshal(jsonObj)
		if err != nil {
			panic("Unable to encode JSON: " + err.Error())
		}
		w.Write(jsonBytes)
	}
}
