package vendors

import (
	"fmt"

	"pmshub/pkg/model"
)

// AuthHeaders builds the outbound headers for a vendor request. The
// Authorization value is a placeholder keyed by connection id, resolved
// by a secrets.Resolver just before dispatch so credentials never touch
// the connection store.
func AuthHeaders(conn *model.Connection) map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}

	switch conn.AuthType {
	case model.AuthAPIKey:
		headers["Authorization"] = fmt.Sprintf("Bearer {{%s_api_key}}", conn.ID)
	case model.AuthBasicAuth:
		headers["Authorization"] = fmt.Sprintf("Basic {{%s_basic_auth}}", conn.ID)
	case model.AuthOAuth:
		headers["Authorization"] = fmt.Sprintf("Bearer {{%s_oauth_token}}", conn.ID)
	}

	return headers
}
