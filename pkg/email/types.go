package email

// Message is a provider-independent outbound email.
// Either TextBody or HTMLBody must be set; both is fine.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
