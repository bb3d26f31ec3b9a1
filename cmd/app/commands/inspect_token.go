package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	sharelinkDomain "github.com/allisson/leadlink/internal/sharelink/domain"
	"github.com/allisson/leadlink/internal/sharelink/service"
)

// TokenInspection is what can be read from a token without a database.
type TokenInspection struct {
	Token     string `json:"token"                yaml:"token"`
	Valid     bool   `json:"valid"                yaml:"valid"`
	RealtorID string `json:"realtor_id,omitempty" yaml:"realtor_id,omitempty"`
	// IssuedAt is set when the second segment is a unix millisecond timestamp.
	IssuedAt   string `json:"issued_at,omitempty"   yaml:"issued_at,omitempty"`
	URL        string `json:"url,omitempty"         yaml:"url,omitempty"`
	PreviewURL string `json:"preview_url,omitempty" yaml:"preview_url,omitempty"`
}

// InspectToken checks the token shape and decodes its segments offline.
func InspectToken(token, baseURL string) TokenInspection {
	inspection := TokenInspection{Token: token}

	realtorID, ok := service.ExtractRealtorID(token)
	if !ok {
		return inspection
	}

	inspection.Valid = true
	inspection.RealtorID = realtorID
	inspection.URL = service.BuildShareableURL(token, baseURL)
	inspection.PreviewURL = service.BuildPreviewURL(token, baseURL)

	segments := strings.SplitN(token, service.Separator, 3)
	if millis, err := strconv.ParseInt(segments[1], 10, 64); err == nil {
		inspection.IssuedAt = time.UnixMilli(millis).UTC().Format(sharelinkDomain.TimestampLayout)
	}

	return inspection
}

// RunInspectToken prints InspectToken's result. A malformed token is reported, not returned as an error.
func RunInspectToken(token, baseURL, format string, writer io.Writer) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	inspection := InspectToken(token, baseURL)

	if written, err := writeStructured(writer, format, inspection); written || err != nil {
		return err
	}

	if !inspection.Valid {
		_, _ = fmt.Fprintf(writer, "Token %q is not a valid share token\n", token)
		return nil
	}

	_, _ = fmt.Fprintln(writer, "Token format is valid")
	_, _ = fmt.Fprintf(writer, "Realtor ID: %s\n", inspection.RealtorID)
	if inspection.IssuedAt != "" {
		_, _ = fmt.Fprintf(writer, "Issued At: %s\n", inspection.IssuedAt)
	}
	_, _ = fmt.Fprintf(writer, "URL: %s\n", inspection.URL)
	_, _ = fmt.Fprintf(writer, "Preview URL: %s\n", inspection.PreviewURL)
	return nil
}
