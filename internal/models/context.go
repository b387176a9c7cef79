package models

type contextKey string

// UserContextKey carries the authenticated *models.User through request contexts.
const UserContextKey contextKey = "user"
