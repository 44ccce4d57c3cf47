package logging

import (
	"bytes"

	"github.com/rs/zerolog"
)

// FilteredHTTPLogger is the error log for net/http servers. It truncates the
// "invalid header field value" message, which echoes the raw header value and
// may contain a credential.
type FilteredHTTPLogger struct {
	zerolog.Logger
}

var strInvalidHeaderFieldValue = []byte("invalid header field value")

func (l FilteredHTTPLogger) Write(b []byte) (int, error) {
	if idx := bytes.Index(b, strInvalidHeaderFieldValue); idx >= 0 {
		idx += len(strInvalidHeaderFieldValue)

		forKeyIdx := bytes.Index(b, []byte("for key"))
		if forKeyIdx > idx {
			return l.Logger.Write(append(b[:idx+1], b[forKeyIdx:]...))
		}
		return l.Logger.Write(b[:idx])
	}

	return l.Logger.Write(b)
}

func NewFilteredHTTPLogger() *FilteredHTTPLogger {
	return &FilteredHTTPLogger{
		L.With().Logger(),
	}
}
