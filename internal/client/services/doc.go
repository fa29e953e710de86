// Package services contains the application logic of the postboard client:
// the post and comment board with its local drafts and edit state, the post
// and user forms, and the comments-per-post report.
//
// Services talk to the API through narrow interfaces satisfied by
// client.HTTPClient and read the signed-in user from the session store.
// Ownership checks happen here, before any request is sent; the API stays
// the authority and may still refuse.
package services
