package constant

type ContextKey string

// UserIDKey carries the authenticated user id set by the auth middleware.
const UserIDKey ContextKey = "user_id"
