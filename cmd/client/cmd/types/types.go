package types

// ContextKey is the type for values the root command hangs on the context.
type ContextKey string

// ClientAppKey carries the initialized *client.App to every subcommand.
const ClientAppKey ContextKey = "client-app"
