package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ServeJSON reads the request body into requestObj, runs the handler and
// writes its result as JSON. Errors implementing ClientError render with
// their own status and body; anything else becomes a generic 500 so
// internal details never leak to the client.
func ServeJSON(w http.ResponseWriter, r *http.Request, requestObj interface{}, h func() (interface{}, int, error)) {
	if requestObj != nil {
		bodyBytes, err := readBody(r)
		if err != nil {
			writeServerErrorf(w, "read body")
			return
		}

		if err := json.Unmarshal(bodyBytes, requestObj); err != nil {
			WriteError(w, NewBadRequestError(err, "malformed JSON body"))
			return
		}
	}

	resp, status, err := h()
	if err != nil {
		WriteError(w, err)
		return
	}

	if resp == nil {
		w.WriteHeader(status)
		return
	}

	respBytes, err := json.Marshal(resp)
	if err != nil {
		logrus.Errorf("marshal response: %v", err)
		writeServerErrorf(w, "bad response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(respBytes)
}

// WriteError renders err to the client: ClientError as-is, everything
// else as a generic 500 with the detail only in the log.
func WriteError(w http.ResponseWriter, err error) {
	clientError, ok := err.(ClientError) // type assertion for behavior.
	if ok {
		body, bodyErr := clientError.ResponseBody()
		if bodyErr != nil {
			writeServerErrorf(w, "render error response")
			return
		}
		status, headers := clientError.ResponseHeaders()
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
		return
	}

	logrus.Errorf("handle: %v", err)
	writeServerErrorf(w, "internal error")
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body")
	}
	return body, nil
}

func writeServerErrorf(w http.ResponseWriter, format string, args ...interface{}) {
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintf(w, format, args...)
}
