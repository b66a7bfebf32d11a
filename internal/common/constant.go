// Package common contains shared constants and sentinel errors used across
// the inoauto client components.
package common

// AccessTokenHeaderName is the HTTP header that carries the access token on
// outbound requests to the remote API.
const AccessTokenHeaderName = "x-access-token"

// UnauthorizedMessage is the exact error message the remote API returns when
// the session is no longer valid. Receiving it forces a local logout.
const UnauthorizedMessage = "Não Autorizado"
