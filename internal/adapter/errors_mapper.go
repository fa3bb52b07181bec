package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/dingus-admin/models"
	"github.com/go-resty/resty/v2"
)

// mapResponse turns a received response into nil or a *ResponseError.
//
// The body is optional. When it is a {success, message} object an explicit
// "success": false fails even a 2xx response. A body that is not such an
// object is ignored, so a plain-text or HTML error page carries no message.
func mapResponse(resp *resty.Response) error {
	status := resp.StatusCode()
	ok := status >= http.StatusOK && status < http.StatusMultipleChoices

	raw := strings.TrimSpace(string(resp.Body()))

	var body models.SubmitResponse
	decoded := raw != "" && json.Unmarshal([]byte(raw), &body) == nil

	if ok && (!decoded || body.Success == nil || *body.Success) {
		return nil
	}

	return &ResponseError{Status: status, Message: strings.TrimSpace(body.Message)}
}
