package blood

// donorsByRecipient maps a recipient's blood type to every type that can
// safely donate to it. O- is the universal donor, AB+ the universal
// recipient.
var donorsByRecipient = map[string][]string{
	"O-":  {"O-"},
	"O+":  {"O-", "O+"},
	"A-":  {"O-", "A-"},
	"A+":  {"O-", "O+", "A-", "A+"},
	"B-":  {"O-", "B-"},
	"B+":  {"O-", "O+", "B-", "B+"},
	"AB-": {"O-", "A-", "B-", "AB-"},
	"AB+": {"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"},
}

// CanDonate reports whether donorType blood can be given to recipientType.
func CanDonate(donorType, recipientType string) bool {
	for _, d := range donorsByRecipient[recipientType] {
		if d == donorType {
			return true
		}
	}
	return false
}

// CompatibleDonors returns every blood type that can donate to the recipient,
// or nil for an unknown type.
func CompatibleDonors(recipientType string) []string {
	return donorsByRecipient[recipientType]
}
