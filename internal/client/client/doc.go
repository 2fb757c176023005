// Package client is the HTTP client for the cards backend.
//
// # Endpoints
//
//	POST   /images                              upload an image (base64 body)
//	POST   /images/{fileId}/recognize_entities  extract contact fields
//	POST   /cards                               create a card
//	GET    /cards/{user_id}                     list a user's cards
//	PUT    /cards                               update a card
//	DELETE /cards/{user_id}/{card_id}           delete a card
//
// # Error Handling
//
// Any non-2xx response is returned as *HTTPError carrying the status code and
// the raw body. Transport failures are wrapped and returned as is. Nothing is
// retried and no client-side timeout is applied; callers bound requests
// through the context.
//
// Every request carries an X-Request-Id header, and an Authorization bearer
// header when a token source yields a token.
package client
