package tropo

import (
	"encoding/xml"
	"io"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	pkgError "github.com/dfjacobs/tropo-gateway/pkg/error"
)

// parseStatus extracts the text of the first status element in the
// response body. A nil body is the one anticipated failure and maps to
// the sentinel; a body without a status element is a malformed response
// and fails instead of degrading.
func parseStatus(r io.Reader) (string, error) {
	if r == nil {
		return domainSession.StatusError, nil
	}

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return "", pkgError.MalformedResponseError("signal response has no status element")
		}
		if err != nil {
			return "", pkgError.MalformedResponseError("signal response is not well-formed xml: " + err.Error())
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "status" {
			continue
		}

		var status string
		if err := decoder.DecodeElement(&status, &start); err != nil {
			return "", pkgError.MalformedResponseError("signal response status element unreadable: " + err.Error())
		}
		return status, nil
	}
}
