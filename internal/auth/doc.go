// Package auth implements the write guard of the site.
//
// Every mutating API call carries a single shared secret in its JSON body.
// The Guard compares it against the argon2id hash kept in the access_secrets
// table, apart from the public site settings it protects.
//
// Usage:
//
//	guard := auth.NewGuard(db)
//	app.Post("/api/portfolio", auth.RequireSecret(guard), handler)
//
// There are no user accounts, sessions or permissions: whoever knows the
// secret may write.
package auth
