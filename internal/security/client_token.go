package security

const clientTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const clientTokenLength = 32

// NewClientToken mints the opaque identifier that keys an anonymous wizard
// session and its pending-submission slot.
func NewClientToken() (string, error) {
	return RandomString(clientTokenLength, clientTokenAlphabet)
}
