package integrationtest

import (
	"os"
	"sync"
	"testing"

	"github.com/meulencv/wenomadus/internal/config"
)

// Integration suites talk to the Postgres named by the DB_* variables and
// run only when INTEGRATION is set.
const enableEnv = "INTEGRATION"

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.FromEnv()
	})
	return cfg
}

func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv(enableEnv) == "" {
		t.Skipf("%s is not set", enableEnv)
	}
}
