/*
Package sharelink issues and consumes the shareable lead capture links realtors hand out.

A share token has three hyphen separated segments:

	{realtorId}-{creationTimestampMillis}-{uuid}

The first segment is the realtor id, so a public form can find the realtor without a
lookup table. The uuid makes tokens created in the same millisecond distinct. Tokens are
not signed; anyone who knows a realtor id can build a token that parses. Deployments that
need more than format checks enable strict resolution, which requires the token to be the
one currently stored for its realtor.

# Layout

  - domain: TokenRecord, share link and share kit values, errors
  - service: token generation and parsing, URL building, sharing content
  - usecase: get-or-create, regenerate, resolve, share kit
  - repository: one JSON token record per realtor (PostgreSQL, MySQL)
  - http: realtor scoped and public gin handlers

# Shareable URLs

	https://app.example.com/public-lead-capture-form?token=realtor_42-1737626400000-3f2a...
	https://app.example.com/public-lead-capture-form?token=...&preview=true

The preview variant renders the form without accepting submissions.
*/
package sharelink
