package settings

// EnvVar is the name of the environment variable carrying the settings blob.
// The secret store populates it before the application starts.
const EnvVar = "SecretBlob"

const redactedValue = "[REDACTED]"

// Settings holds every configuration value delivered through the secret blob.
// It has value semantics and is never mutated after construction.
type Settings struct {
	DatabaseServer   string `json:"DatabaseServer"`
	DatabaseName     string `json:"DatabaseName"`
	DatabaseUsername string `json:"DatabaseUsername"`
	DatabasePassword string `json:"DatabasePassword"`
	LogWebhookURI    string `json:"LogWebhookUri"`
	SendgridAPIKey   string `json:"SendgridApiKey"`
	EmailFromName    string `json:"EmailFromName"`
	EmailFromAddress string `json:"EmailFromAddress"`
	EmailToAddresses string `json:"EmailToAddresses"`
}

// requiredKeys lists every JSON key the blob must contain.
var requiredKeys = []string{
	"DatabaseServer",
	"DatabaseName",
	"DatabaseUsername",
	"DatabasePassword",
	"LogWebhookUri",
	"SendgridApiKey",
	"EmailFromName",
	"EmailFromAddress",
	"EmailToAddresses",
}

// Redacted returns a copy with credential fields masked. Use it whenever the
// settings are written to logs or any other operational surface.
func (s Settings) Redacted() Settings {
	s.DatabasePassword = redactedValue
	s.SendgridAPIKey = redactedValue
	return s
}
