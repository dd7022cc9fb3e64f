package security

// Principal is the verified identity bound to a request by the auth middleware.
type Principal struct {
	Email   string
	Subject string
}
