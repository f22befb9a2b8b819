package domain

// CredentialRecord holds the active AWS credential. It is owned exclusively
// by the credential store; other components receive derived config objects.
type CredentialRecord struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	SessionToken    string
}

// Validate checks the fields required to build an AWS client config.
func (c CredentialRecord) Validate() error {
	switch {
	case c.AccessKeyID == "":
		return &ConfigurationError{Reason: "access key id is required"}
	case c.SecretAccessKey == "":
		return &ConfigurationError{Reason: "secret access key is required"}
	case c.Region == "":
		return &ConfigurationError{Reason: "region is required"}
	}
	return nil
}
