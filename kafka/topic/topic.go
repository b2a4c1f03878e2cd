package topic

import (
	"atlas-sorter/model"
	"os"

	"github.com/sirupsen/logrus"
)

// EnvProvider resolves a topic token to its configured topic name, falling
// back to the token itself.
func EnvProvider(l logrus.FieldLogger) func(token string) model.Provider[string] {
	return func(token string) model.Provider[string] {
		return func() (string, error) {
			t, ok := os.LookupEnv(token)
			if !ok || t == "" {
				l.Warnf("%s environment variable not set. Defaulting to env variable.", token)
				return token, nil
			}
			return t, nil
		}
	}
}
