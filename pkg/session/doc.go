// Package session resolves admin sessions for the back office API.
//
// Sessions are HMAC-signed JWTs carried in a cookie (browser clients) or an
// Authorization bearer header (CLI and tests). The Manager issues and
// verifies tokens; its middleware resolves the token into an Identity and
// attaches it to the request context. Handlers never touch tokens: the
// authorization gate only asks "is an identity present, and is it an
// admin?". A missing, expired, or tampered token simply yields no identity,
// which the gate treats uniformly as deny.
//
// Session issuance for real users (login pages) is owned by the main
// TradingGrow web app; this package only needs to agree with it on the
// signing secret and claim shape.
package session
