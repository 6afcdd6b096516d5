package types

type contextKey string

// ClientAppKey carries the initialized client app through the command
// context into the subcommand packages.
const ClientAppKey contextKey = "clientApp"
